package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/storage"
)

// fakeGame is a scripted game: forfeit ends it with a fixed score.
type fakeGame struct {
	resets   int
	resized  [2]int
	score    int
	turns    int
	gameOver bool
	paused   bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.gameOver = false
	g.paused = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Swipe() != core.ActionNone && !g.gameOver {
		g.turns++
	}
	if in.Has(core.ActionForfeit) {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, Turns: g.turns, GameOver: g.gameOver, Paused: g.paused}
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// press sends a key and then one tick, like the running program would.
func press(m GameModel, msg tea.KeyMsg) GameModel {
	next, _ := m.Update(msg)
	next, _ = next.(GameModel).Update(TickMsg(time.Now()))
	return next.(GameModel)
}

func newTestModel(g *fakeGame, store *storage.Store) GameModel {
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 1})
	m.Init()
	return m
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{score: 90}
	m := newTestModel(g, store)

	m = press(m, runeKey("a"))
	m = press(m, runeKey("x"))
	if !m.State().GameOver {
		t.Fatal("forfeit should end the game")
	}

	// Further ticks must not save again
	m = press(m, runeKey("z"))
	press(m, runeKey("z"))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 90 || scores[0].Turns != 1 {
		t.Errorf("saved %d/%d, expected 90 points in 1 turn", scores[0].Score, scores[0].Turns)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := newTestModel(&fakeGame{}, store)

	press(m, runeKey("x"))

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 0 {
		t.Errorf("zero scores should not be recorded, got %d", len(scores))
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &fakeGame{score: 10}
	m := newTestModel(g, nil)

	// Restart is ignored while the game is running
	m = press(m, runeKey("r"))
	if g.resets != 1 {
		t.Fatalf("resets = %d, expected only the initial one", g.resets)
	}

	m = press(m, runeKey("x"))
	m = press(m, runeKey("r"))
	if g.resets != 2 {
		t.Errorf("resets = %d after restart, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("restarted game should not be over")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back must be ignored while playing")
	}

	m = press(m, runeKey("p"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if cmd != nil {
		t.Error("embedded model must not quit the program on back")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, cmd := m.Update(runeKey("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v, expected [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resizable games must not be reset, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
