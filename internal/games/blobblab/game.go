// Package blobblab adapts the Blobblab rules engine to the platform's Game
// interface: one registered game per board size.
package blobblab

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/blobblab/internal/config"
	platformcore "github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/games/blobblab/core"
	"github.com/vovakirdan/blobblab/internal/registry"
)

// BaseID is the game id of the 8×8 board; larger boards append the size.
const BaseID = "blobblab"

// clearFlashTicks is how long the line clear message stays in the HUD.
const clearFlashTicks = 45

// Game implements the Blobblab puzzle for one board size.
type Game struct {
	size    int
	rng     *rand.Rand
	session *core.Session
	preview int
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused   bool
	tooSmall bool
	err      error // Invalid configuration; the game refuses to start

	lastTurn   core.TurnResult
	flashTicks int

	cfg *config.BlobblabConfig // Per-game override of the package settings
}

// Package-level configuration shared by every new game.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultBlobblabConfig()
)

// Configure sets the configuration used by subsequent Reset calls.
func Configure(cfg config.BlobblabConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Settings returns the configuration games are built from.
func Settings() config.BlobblabConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// GameID returns the registry id for a board size.
func GameID(size int) string {
	if size == config.BoardSizes[0] {
		return BaseID
	}
	return fmt.Sprintf("%s_%d", BaseID, size)
}

// SizeFromID extracts the board size from a registry id.
func SizeFromID(id string) (int, bool) {
	if id == BaseID {
		return config.BoardSizes[0], true
	}
	suffix, ok := strings.CutPrefix(id, BaseID+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// New creates a game on an n×n board.
func New(size int) *Game {
	return &Game{size: size}
}

func init() {
	for _, size := range config.BoardSizes {
		size := size
		registry.Register(GameID(size), func() registry.Game {
			return New(size)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.size)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Blobblab %dx%d", g.size, g.size)
}

// Description returns a one-line summary for menus and listings.
func (g *Game) Description() string {
	return fmt.Sprintf("Slide shapes, fill rows and columns on a %dx%d board", g.size, g.size)
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.size
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.lastTurn = core.TurnResult{}
	g.flashTicks = 0
	g.session = nil

	gameCfg := Settings()
	if g.cfg != nil {
		gameCfg = *g.cfg
	}
	g.err = g.newSession(gameCfg)

	g.checkScreenSize()
}

// UseConfig makes this game ignore the package settings and build its
// sessions from cfg instead. Takes effect on the next Reset.
func (g *Game) UseConfig(cfg config.BlobblabConfig) {
	g.cfg = &cfg
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// newSession builds the engine session from the configuration.
func (g *Game) newSession(cfg config.BlobblabConfig) error {
	opts, err := cfg.ToOptions(g.size)
	if err != nil {
		return err
	}

	source, err := core.NewRandomProvider(g.rng, opts.Footprints, opts.Tags)
	if err != nil {
		return err
	}

	var provider core.Provider = source
	g.preview = cfg.Spawn.Preview
	if g.preview > 0 {
		provider = core.NewPreviewQueue(source, g.preview)
	}

	session, err := core.NewSession(opts, g.rng, provider)
	if err != nil {
		return err
	}
	if err := session.InitBoard(g.size); err != nil {
		return err
	}

	g.session = session
	return nil
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardExtent(g.size)
	g.tooSmall = g.screenW < boardW || g.screenH < boardH+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.err != nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.GameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionForfeit) {
		g.session.Forfeit()
		return platformcore.StepResult{State: g.State()}
	}

	dir, ok := swipeDir(in.Swipe())
	if !ok {
		return platformcore.StepResult{State: g.State()}
	}

	res, err := g.session.SubmitSwipe(dir)
	if err != nil {
		// Only reachable through a broken call sequence; keep the board as is.
		return platformcore.StepResult{State: g.State()}
	}
	if res.Moved {
		g.lastTurn = res
		if res.LinesCleared > 0 {
			g.flashTicks = clearFlashTicks
		}
	}

	return platformcore.StepResult{State: g.State(), Moved: res.Moved}
}

// swipeDir maps a movement action to an engine direction.
func swipeDir(a platformcore.Action) (core.Dir, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: g.err != nil}
	}
	return platformcore.GameState{
		Score:    g.session.Score(),
		Turns:    g.session.Turns(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Err returns the configuration error that kept the game from starting.
func (g *Game) Err() error {
	return g.err
}

// Session exposes the engine session, or nil before Reset.
func (g *Game) Session() *core.Session {
	return g.session
}
