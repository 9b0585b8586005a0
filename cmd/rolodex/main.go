// Package main provides the rolodex binary: an interactive contact-book
// assistant with a snapshot file persisted between runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/rolodex/pkg/commands"
	"github.com/entrhq/rolodex/pkg/config"
	"github.com/entrhq/rolodex/pkg/executor/cli"
	"github.com/entrhq/rolodex/pkg/executor/tui"
	"github.com/entrhq/rolodex/pkg/logging"
	"github.com/entrhq/rolodex/pkg/store"
	"github.com/entrhq/rolodex/pkg/view"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile   string
	SnapshotPath string
	Days         int
	Plain        bool
	ShowVersion  bool
}

func main() {
	cliConfig := parseFlags()

	if cliConfig.ShowVersion {
		fmt.Printf("rolodex v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, cliConfig); err != nil {
		log.Printf("rolodex failed: %v", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	cliConfig := &CLIConfig{}

	flag.StringVar(&cliConfig.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&cliConfig.SnapshotPath, "snapshot", "", "Path to the address book snapshot file")
	flag.IntVar(&cliConfig.Days, "days", 0, "Default birthday lookahead in days (overrides config)")
	flag.BoolVar(&cliConfig.Plain, "plain", false, "Run the plain line-oriented loop instead of the full-screen interface")
	flag.BoolVar(&cliConfig.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Rolodex - Interactive Contact Assistant\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rolodex [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Run the full-screen interface on the default snapshot\n")
		fmt.Fprintf(os.Stderr, "  rolodex\n\n")
		fmt.Fprintf(os.Stderr, "  # Plain loop over a custom snapshot file\n")
		fmt.Fprintf(os.Stderr, "  rolodex -plain -snapshot ./contacts.json\n\n")
	}

	flag.Parse()
	return cliConfig
}

func run(ctx context.Context, cliConfig *CLIConfig) error {
	cfg, err := config.Load(cliConfig.ConfigFile)
	if err != nil {
		return err
	}

	// CLI args override config file values.
	if cliConfig.SnapshotPath != "" {
		cfg.SnapshotPath = cliConfig.SnapshotPath
	}
	if cliConfig.Days > 0 {
		cfg.BirthdayWindowDays = cliConfig.Days
	}
	if cliConfig.Plain {
		cfg.Plain = true
	}

	logger, _ := logging.NewLogger("main") // falls back to stderr on error
	defer logger.Close()

	st, err := store.NewFileStore(cfg.SnapshotPath)
	if err != nil {
		return err
	}

	book, err := st.Load()
	if err != nil {
		return err
	}
	logger.Infof("loaded %d contact(s) from %s", book.Len(), st.Path())

	// Flush the book on signal-triggered exits; the normal path saves
	// after the executor returns.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Infof("signal received, saving snapshot")
		if saveErr := st.Save(book); saveErr != nil {
			logger.Errorf("save on signal: %v", saveErr)
			fmt.Fprintf(os.Stderr, "failed to save address book: %v\n", saveErr)
			os.Exit(1)
		}
		fmt.Println("\nGood bye!")
		os.Exit(0)
	}()

	if cfg.Plain {
		d := commands.NewDispatcher(
			book,
			view.NewConsoleView(),
			commands.WithDefaultDays(cfg.BirthdayWindowDays),
			commands.WithLogger(logger),
		)
		err = cli.NewExecutor(d).Run(ctx)
	} else {
		err = tui.NewExecutor(
			book,
			tui.WithSnapshotPath(st.Path()),
			tui.WithDefaultDays(cfg.BirthdayWindowDays),
			tui.WithLogger(logger),
		).Run(ctx)
	}
	if err != nil {
		// Save whatever we have before reporting the failure.
		if saveErr := st.Save(book); saveErr != nil {
			logger.Errorf("save after failure: %v", saveErr)
		}
		return err
	}

	if err := st.Save(book); err != nil {
		return err
	}
	logger.Infof("saved %d contact(s) to %s", book.Len(), st.Path())
	return nil
}
