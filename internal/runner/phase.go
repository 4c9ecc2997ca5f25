package runner

// Phase is the top-level game state. Exactly one is active at a time.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a lowercase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
