// processor.go - Game replay and output functions
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/luchess-go/internal/config"
	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/hashing"
	"github.com/lgbarn/luchess-go/internal/notation"
	"github.com/lgbarn/luchess-go/internal/output"
	"github.com/lgbarn/luchess-go/internal/replay"
	"github.com/lgbarn/luchess-go/internal/storage"
	"github.com/lgbarn/luchess-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	replayer *replay.Replayer
	store    *storage.Storage
	writer   output.ResultWriter
	detector *hashing.DuplicateDetector

	totalGames  int
	failedGames int
	duplicates  int
}

// newProcessingContext builds the replayer, result writer and, when a
// database directory is configured, the game store.
func newProcessingContext(cfg *config.Config) (*ProcessingContext, error) {
	replayer, err := replay.NewReplayerFromFEN(cfg.Replay.StartFEN)
	if err != nil {
		return nil, err
	}

	pc := &ProcessingContext{
		cfg:      cfg,
		replayer: replayer,
		writer:   output.NewResultWriter(cfg.OutputFile, cfg),
	}

	if cfg.Duplicate.Suppress {
		pc.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}

	if cfg.Replay.DBDir != "" {
		store, err := storage.Open(cfg.Replay.DBDir)
		if err != nil {
			return nil, err
		}
		pc.store = store
	}
	return pc, nil
}

// Close flushes pending output and closes the store.
func (pc *ProcessingContext) Close() error {
	err := pc.writer.Close()
	if pc.store != nil {
		if cerr := pc.store.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// processInput reads the games in r. name is used in diagnostics.
func processInput(r io.Reader, name string, cfg *config.Config) ([]replay.Game, error) {
	games, err := replay.ParseGames(r)
	if err != nil {
		return games, errors.Wrap(err, name)
	}
	cfg.Logf(2, "%s: %d game(s) read\n", name, len(games))
	return games, nil
}

// processGames replays games in parallel, writes their results and stores
// them if a store is open. Duplicates are dropped in input order, so the
// first game to reach a position is the one kept.
func processGames(ctx context.Context, pc *ProcessingContext, games []replay.Game, name string) error {
	results, err := worker.ReplayAll(ctx, pc.replayer, games,
		worker.WithWorkers(pc.cfg.Replay.Workers),
		worker.WithBufferSize(pc.cfg.Replay.BufferSize))

	kept := results[:0]
	for _, res := range results {
		pc.totalGames++
		if pc.detector != nil {
			if first, dup := pc.detector.CheckAndAdd(res); dup {
				pc.duplicates++
				pc.cfg.Logf(2, "%s: game %s duplicates game %s\n", name, res.Game.ID, first.GameID)
				continue
			}
		}
		kept = append(kept, res)
		if !res.OK() {
			pc.failedGames++
			var ge *errors.GameError
			if errors.As(res.Err, &ge) {
				ge.File = name
			}
			pc.cfg.Logf(2, "%v\n", res.Err)
		}
		if werr := pc.writer.WriteResult(res); werr != nil {
			return werr
		}
	}

	if pc.store != nil && len(kept) > 0 {
		if serr := pc.store.SaveResults(kept); serr != nil {
			return serr
		}
		pc.cfg.Logf(2, "%s: %d record(s) stored\n", name, len(kept))
	}
	return err
}

// processAllInputs replays every input file, or stdin when there are none.
func processAllInputs(ctx context.Context, pc *ProcessingContext, stdin io.Reader) error {
	if len(pc.cfg.InputFiles) == 0 {
		return processReader(ctx, pc, stdin, "stdin")
	}

	for _, filename := range pc.cfg.InputFiles {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(pc.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = processReader(ctx, pc, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

func processReader(ctx context.Context, pc *ProcessingContext, r io.Reader, name string) error {
	games, err := processInput(r, name, pc.cfg)
	if err != nil {
		// Replay the games read before the bad line, then report it.
		if perr := processGames(ctx, pc, games, name); perr != nil {
			return perr
		}
		return err
	}
	return processGames(ctx, pc, games, name)
}

// showStoredGame prints the stored record for id as JSON.
func showStoredGame(w io.Writer, store *storage.Storage, id string) error {
	rec, err := store.LoadGame(id)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// listStoredGames prints the stored game ids, one per line.
func listStoredGames(w io.Writer, store *storage.Storage) error {
	ids, err := store.ListGames()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// checkNotation reports the tokens of algebraic move text. It returns false
// if the text does not match.
func checkNotation(w io.Writer, text string) bool {
	match, ok := notation.NewValidator().Validate(text)
	if !ok {
		fmt.Fprintf(w, "%q: not valid notation\n", text)
		return false
	}

	writeHalfMove(w, "white", match.White)
	if match.Black != nil {
		writeHalfMove(w, "black", *match.Black)
	}
	if match.Result != "" {
		fmt.Fprintf(w, "result: %s\n", match.Result)
	}
	return true
}

func writeHalfMove(w io.Writer, side string, h notation.HalfMove) {
	if h.Castle != "" {
		fmt.Fprintf(w, "%s: %s castle=%s check=%q\n", side, h.Text, h.Castle, h.Check)
		return
	}
	piece := h.Piece
	if piece == "" {
		piece = "P"
	}
	fmt.Fprintf(w, "%s: %s piece=%s from=%q capture=%t target=%s promotion=%q check=%q\n",
		side, h.Text, piece, h.Disambiguation, h.Capture, h.Target, h.Promotion, h.Check)
}
