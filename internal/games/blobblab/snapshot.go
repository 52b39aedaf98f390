package blobblab

import "github.com/vovakirdan/blobblab/internal/games/blobblab/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateInvalid     GameStateType = "invalid_config"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	ID    string
	Size  int
	Score int
	Turns int
	Board core.Snapshot
	Next  []string // Footprint names of previewed pieces
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: g.tick,
		ID:   g.ID(),
		Size: g.size,
	}

	switch {
	case g.session == nil:
		snap.State = StateInvalid
		return snap
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session.GameOver():
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	default:
		snap.State = StatePlaying
	}

	snap.Score = g.session.Score()
	snap.Turns = g.session.Turns()
	snap.Board = g.session.Snapshot()
	for _, p := range g.session.Preview(g.preview) {
		snap.Next = append(snap.Next, p.Footprint.Name)
	}
	return snap
}
