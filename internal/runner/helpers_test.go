package runner

import (
	"github.com/vovakirdan/javi-run/internal/config"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// quietConfig returns defaults with spawning pushed far into the future so
// tests control the obstacle collection themselves.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Gameplay.SpawnInterval = config.Range{Min: 1000, Max: 1001}
	return cfg
}

// fakeStore records writes and can be made to fail.
type fakeStore struct {
	high    int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) LoadHighScore() (int, error) {
	return s.high, s.loadErr
}

func (s *fakeStore) SaveHighScore(score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.high = score
	return nil
}
