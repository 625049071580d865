// Package trace records a complete run and writes it out as json, csv or yaml.
package trace

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/step"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown trace format %q (available: json, csv, yaml)", s)
}

type Trace struct {
	ID        string             `json:"id" yaml:"id"`
	Algorithm string             `json:"algorithm" yaml:"algorithm"`
	Timestamp time.Time          `json:"timestamp" yaml:"timestamp"`
	Input     []int              `json:"input" yaml:"input,flow"`
	Output    []int              `json:"output" yaml:"output,flow"`
	Metrics   map[string]float64 `json:"metrics" yaml:"metrics"`
	Events    []step.Event       `json:"events" yaml:"events"`
}

// Record runs algorithm on the session's current array without pacing and
// captures every event, including the final Sorted.
func Record(s *session.Session, algorithm string) (*Trace, error) {
	input := s.Values()

	run, err := s.Begin(algorithm)
	if err != nil {
		return nil, err
	}
	defer run.Close()

	tally := metrics.Default()
	rec := step.NewRecorder()
	player := step.NewPlayer(step.Multi(tally, rec), nil, step.WithSleep(step.NoSleep))
	if err := player.Play(context.Background(), run); err != nil {
		return nil, err
	}

	return &Trace{
		ID:        uuid.New().String(),
		Algorithm: algorithm,
		Timestamp: time.Now(),
		Input:     input,
		Output:    s.Values(),
		Metrics:   tally.Values(),
		Events:    rec.Events(),
	}, nil
}

func (t *Trace) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return t.writeCSV(w)
	}
	return fmt.Errorf("unknown trace format %q", format)
}

// writeCSV writes one row per event. Single-index and whole-array events
// leave the unused columns empty.
func (t *Trace) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seq", "kind", "i", "j"}); err != nil {
		return err
	}

	for n, e := range t.Events {
		row := []string{strconv.Itoa(n), e.Kind.String(), "", ""}
		switch e.Kind {
		case step.Render, step.Sorted:
		case step.Highlight:
			row[2] = strconv.Itoa(e.I)
		default:
			row[2] = strconv.Itoa(e.I)
			row[3] = strconv.Itoa(e.J)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadJSON loads a trace written with FormatJSON.
func ReadJSON(r io.Reader) (*Trace, error) {
	var t Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	return &t, nil
}
