// luchess replays chess games given as coordinate moves and reports the
// first move of each game that breaks the movement rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/luchess-go/internal/config"
	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("luchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	if *checkText != "" {
		if !checkNotation(os.Stdout, *checkText) {
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *showGame != "" || *listGames {
		if err := queryStore(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, os.Stdin)
	stop()
	os.Exit(code)
}

// run replays all inputs and returns the process exit code: 0 when every
// game replayed, 1 on an error, 2 when some game hit a bad move.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader) int {
	pc, err := newProcessingContext(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	err = processAllInputs(ctx, pc, stdin)
	if cerr := pc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	reportStatistics(pc)
	if pc.failedGames > 0 {
		return 2
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// queryStore answers -show and -list from the game store.
func queryStore(cfg *config.Config) error {
	if cfg.Replay.DBDir == "" {
		return fmt.Errorf("-show and -list need -db: %w", errors.ErrInvalidConfig)
	}
	store, err := storage.Open(cfg.Replay.DBDir)
	if err != nil {
		return err
	}
	defer store.Close()

	if *listGames {
		return listStoredGames(cfg.OutputFile, store)
	}
	return showStoredGame(cfg.OutputFile, store, *showGame)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(pc *ProcessingContext) {
	if pc.detector != nil {
		pc.cfg.Logf(1, "%d game(s) replayed, %d duplicate(s), %d stopped by a bad move.\n",
			pc.totalGames, pc.duplicates, pc.failedGames)
		return
	}
	pc.cfg.Logf(1, "%d game(s) replayed, %d stopped by a bad move.\n", pc.totalGames, pc.failedGames)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: luchess [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games and reports moves that break the movement rules.\n\n")
	fmt.Fprintf(os.Stderr, "Input is one game per line, optionally labelled:\n")
	fmt.Fprintf(os.Stderr, "  italian: e2e4 e7e5 g1f3 b8c6 f1c4\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status: 0 all games legal, 1 error, 2 some game stopped by a bad move.\n")
}
