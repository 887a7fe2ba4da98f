package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of the game loop.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Level reached in the current (or last) session
	Lives    int  // Remaining lives
	Health   int  // Player health
	GameOver bool // Whether the session is in its loss dwell
}

// EventKind classifies a game-semantic event reported by a step.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventWaveStarted
	EventEnemyDestroyed
	EventPlayerHit
	EventLifeLost
	EventSessionLost
	EventSessionEnded
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session started"
	case EventWaveStarted:
		return "wave started"
	case EventEnemyDestroyed:
		return "enemy destroyed"
	case EventPlayerHit:
		return "player hit"
	case EventLifeLost:
		return "life lost"
	case EventSessionLost:
		return "session lost"
	case EventSessionEnded:
		return "session ended"
	default:
		return "unknown"
	}
}

// ValueName names what Event.Value holds for this kind, for structured logs.
// It is empty when Value only repeats Event.Level.
func (k EventKind) ValueName() string {
	switch k {
	case EventWaveStarted:
		return "enemies"
	case EventEnemyDestroyed:
		return "remaining"
	case EventPlayerHit:
		return "health"
	case EventLifeLost:
		return "lives"
	default:
		return "" // Value repeats the level
	}
}

// Event is a notable thing that happened during one tick.
// The simulation never logs; shells decide what to do with events.
type Event struct {
	Kind  EventKind
	Level int
	Value int // Kind-specific: enemies spawned, health left, lives left
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // A quit event was drained; the process should exit
}
