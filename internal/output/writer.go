// Package output writes replay results as text lines or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/luchess-go/internal/config"
	"github.com/lgbarn/luchess-go/internal/replay"
)

// ResultWriter is the interface for writing replay results to output.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single replay result to the output.
	WriteResult(res replay.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.Output.Format.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// Summary counts the results seen by a writer.
type Summary struct {
	Games   int `json:"games"`
	Legal   int `json:"legal"`
	Illegal int `json:"illegal"`
	Invalid int `json:"invalid"`
}

func (s *Summary) add(res replay.Result) {
	s.Games++
	switch statusOf(res) {
	case statusOK:
		s.Legal++
	case statusIllegal:
		s.Illegal++
	default:
		s.Invalid++
	}
}

// TextWriter writes one line per game.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	summary Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes res as a single line.
func (tw *TextWriter) WriteResult(res replay.Result) error {
	tw.summary.add(res)
	if res.OK() && tw.cfg.Output.OnlyFailures {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, FormatResult(res, tw.cfg.Output.ShowFEN))
	return err
}

// Flush is a no-op; lines are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the summary line if enabled.
func (tw *TextWriter) Close() error {
	if !tw.cfg.Output.ShowSummary {
		return nil
	}
	s := tw.summary
	_, err := fmt.Fprintf(tw.w, "%d game(s): %d legal, %d illegal, %d invalid\n", s.Games, s.Legal, s.Illegal, s.Invalid)
	return err
}

// Summary returns the counts so far.
func (tw *TextWriter) Summary() Summary {
	return tw.summary
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []*JSONResult
	summary Summary
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*JSONResult, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(res replay.Result) error {
	jw.summary.add(res)
	if res.OK() && jw.cfg.Output.OnlyFailures {
		return nil
	}
	jw.results = append(jw.results, ResultToJSON(res))
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 && jw.summary.Games == 0 {
		return nil
	}

	out := &JSONOutput{Games: jw.results}
	if jw.cfg.Output.ShowSummary {
		summary := jw.summary
		out.Summary = &summary
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.results = jw.results[:0]
	jw.summary = Summary{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
