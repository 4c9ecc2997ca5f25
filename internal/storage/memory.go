package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a process-local backend. Nothing survives a restart.
type Memory struct {
	mu     sync.Mutex
	high   int
	runs   []RunEntry
	nextID int64
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadHighScore returns the best score so far.
func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

// SaveHighScore keeps score if it beats the current value.
func (m *Memory) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.high {
		m.high = score
	}
	return nil
}

// SaveRun records a finished run.
func (m *Memory) SaveRun(score int, duration time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e := RunEntry{
		ID:        m.nextID,
		RunID:     uuid.NewString(),
		Score:     score,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}
	m.runs = append(m.runs, e)
	return e.RunID, nil
}

// TopRuns returns the top N runs ordered by score descending.
func (m *Memory) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.Lock()
	runs := make([]RunEntry, len(m.runs))
	copy(runs, m.runs)
	m.mu.Unlock()

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Score > runs[j].Score
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Stats aggregates the recorded runs.
func (m *Memory) Stats() (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{Runs: len(m.runs), HighScore: m.high}
	for _, r := range m.runs {
		stats.TotalScore += int64(r.Score)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
