package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"simple-snake/config"
)

// OutputManager appends finished rounds to rounds.csv. The file is only
// ever written; the game never reads it back.
type OutputManager struct {
	dir           string
	roundsFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and rounds.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}

	return &OutputManager{dir: dir, roundsFile: f}, nil
}

// WriteConfig saves the effective configuration next to the round log.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRound writes one round record.
func (om *OutputManager) WriteRound(r RoundRecord) error {
	if om == nil {
		return nil
	}

	records := []RoundRecord{r}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
		om.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the round log.
func (om *OutputManager) Close() error {
	if om == nil || om.roundsFile == nil {
		return nil
	}
	return om.roundsFile.Close()
}

// Recorder collects finished rounds into SessionStats and, when an
// OutputManager is set, into the CSV log.
type Recorder struct {
	Stats  *SessionStats
	output *OutputManager
	logger *slog.Logger
}

// NewRecorder creates a Recorder. output may be nil.
func NewRecorder(output *OutputManager, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		Stats:  NewSessionStats(),
		output: output,
		logger: logger,
	}
}

// ObserveRound records a finished round.
func (r *Recorder) ObserveRound(rec RoundRecord) {
	r.Stats.AddRound(rec)
	if err := r.output.WriteRound(rec); err != nil {
		r.logger.Error("failed to write round", "round", rec.Round, "error", err)
	}
}
