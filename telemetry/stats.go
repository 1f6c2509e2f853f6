package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	SessionID string  `csv:"session_id"`
	Round     int     `csv:"round"`
	Length    int     `csv:"length"`
	FoodEaten int     `csv:"food_eaten"`
	Steps     int     `csv:"steps"`
	Duration  float64 `csv:"duration_s"` // Simulated seconds
	Cause     string  `csv:"cause"`
}

// SessionStats aggregates finished rounds for the current process.
type SessionStats struct {
	Rounds []RoundRecord
}

// NewSessionStats creates an empty aggregate.
func NewSessionStats() *SessionStats {
	return &SessionStats{
		Rounds: make([]RoundRecord, 0),
	}
}

// AddRound appends a finished round.
func (s *SessionStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
}

// Count returns the number of finished rounds.
func (s *SessionStats) Count() int {
	return len(s.Rounds)
}

func (s *SessionStats) lengths() []float64 {
	out := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		out[i] = float64(r.Length)
	}
	return out
}

// GetAverageLength returns the mean final length, or 0 with no rounds.
func (s *SessionStats) GetAverageLength() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	return stat.Mean(s.lengths(), nil)
}

// GetMaxLength returns the longest final length, or 0 with no rounds.
func (s *SessionStats) GetMaxLength() int {
	if len(s.Rounds) == 0 {
		return 0
	}
	return int(floats.Max(s.lengths()))
}

// GetMedianLength returns the median final length, or 0 with no rounds.
func (s *SessionStats) GetMedianLength() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	sorted := s.lengths()
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// GetAverageDuration returns the mean round duration in seconds.
func (s *SessionStats) GetAverageDuration() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	durations := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		durations[i] = r.Duration
	}
	return stat.Mean(durations, nil)
}

// CauseCounts returns how many rounds ended for each collision cause.
func (s *SessionStats) CauseCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.Rounds {
		counts[r.Cause]++
	}
	return counts
}

// LogStats writes the aggregate to the default logger.
func (s *SessionStats) LogStats() {
	slog.Info("session",
		"rounds", s.Count(),
		"avg_length", s.GetAverageLength(),
		"median_length", s.GetMedianLength(),
		"max_length", s.GetMaxLength(),
		"avg_duration_s", s.GetAverageDuration(),
	)
}
