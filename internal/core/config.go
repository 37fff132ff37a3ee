package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts) or pixels
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to its host after each tick.
type GameState struct {
	Score     int  // Floored score
	Health    int  // Current health
	MaxHealth int  // Health ceiling, for bars
	GameOver  bool // Terminal flag
	Paused    bool
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	// EventGameOver fires once, on the tick health reaches zero.
	EventGameOver EventKind = iota + 1
)

// Event is a notification from the simulation to its host.
type Event struct {
	Kind  EventKind
	Score int // Final floored score for EventGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// GameOverEvent returns the game-over event from this tick, if any.
func (r StepResult) GameOverEvent() (Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == EventGameOver {
			return ev, true
		}
	}
	return Event{}, false
}

// RunStats summarises a finished session for persistence.
type RunStats struct {
	Frames      int
	Jumps       int
	Sacrifices  int
	DamageTaken int
	Healed      int
}
