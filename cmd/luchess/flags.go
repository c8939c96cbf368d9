// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/luchess-go/internal/config"
)

var (
	// Input/output options
	inputFile    = flag.String("i", "", "Input file of games, one per line (default: stdin)")
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Output in JSON format")
	noFEN        = flag.Bool("nofen", false, "Don't print the final position of each game")
	failuresOnly = flag.Bool("failures", false, "Only output games stopped by an illegal or unreadable move")
	summary      = flag.Bool("summary", false, "Append game counts to the output")

	// Replay options
	startFEN = flag.String("fen", "", "Starting position for every game (default: standard layout)")
	workers  = flag.Int("j", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in the same position as an earlier game")
	exactDuplicates    = flag.Bool("exactdups", false, "Duplicates must also have the same number of plies")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions for -D (0 = unlimited)")

	// Storage
	dbDir     = flag.String("db", "", "Store replay records in this directory")
	showGame  = flag.String("show", "", "Print the stored record for a game id and exit (needs -db)")
	listGames = flag.Bool("list", false, "List stored game ids and exit (needs -db)")

	// Notation
	checkText = flag.String("check", "", "Check algebraic move text such as \"Bxd7+ Qxd7\" and exit")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=game count, 2=running commentary")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no game count)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	if *inputFile != "" {
		cfg.InputFiles = append(cfg.InputFiles, *inputFile)
	}
	cfg.InputFiles = append(cfg.InputFiles, flag.Args()...)
	cfg.OutputFilename = *outputFile
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	}
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.OnlyFailures = *failuresOnly
	cfg.Output.ShowSummary = *summary
}

// applyReplayFlags configures the replay workers, start position and store.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.Workers = *workers
	if cfg.Replay.Workers <= 0 {
		cfg.Replay.Workers = runtime.NumCPU()
	}
	cfg.Replay.StartFEN = *startFEN
	cfg.Replay.DBDir = *dbDir
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
