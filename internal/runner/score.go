package runner

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score across sessions.
// An absent value loads as 0 with a nil error.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Scoreboard tracks the run score and the persistent high score.
// Persistence failures are logged and never interrupt play.
type Scoreboard struct {
	score     int
	highScore int
	store     HighScoreStore
	logger    *log.Logger
}

// NewScoreboard loads the high score from store. A nil store keeps the
// high score in memory only.
func NewScoreboard(store HighScoreStore, logger *log.Logger) *Scoreboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Scoreboard{store: store, logger: logger}
	if store == nil {
		return s
	}

	high, err := store.LoadHighScore()
	if err != nil {
		logger.Warn("could not load high score", "err", err)
		return s
	}
	if high > 0 {
		s.highScore = high
	}
	return s
}

// Passed scores one obstacle. It reports whether the high score moved.
func (s *Scoreboard) Passed() bool {
	s.score++
	if s.score <= s.highScore {
		return false
	}
	s.highScore = s.score
	if s.store != nil {
		if err := s.store.SaveHighScore(s.highScore); err != nil {
			s.logger.Warn("could not save high score", "score", s.highScore, "err", err)
		}
	}
	return true
}

// Reset zeroes the run score. The high score is kept.
func (s *Scoreboard) Reset() {
	s.score = 0
}

// Score returns the current run score.
func (s *Scoreboard) Score() int {
	return s.score
}

// HighScore returns the best score seen so far.
func (s *Scoreboard) HighScore() int {
	return s.highScore
}
