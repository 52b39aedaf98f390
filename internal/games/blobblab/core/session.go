package core

import (
	"fmt"
	"math/rand"
)

// Options configures a Session.
type Options struct {
	Size          int         // Board dimension N
	InitialShapes int         // Pieces spawned when a board is initialized
	LineBase      int         // Score multiplier: delta = LineBase * k * k
	StuckEndsGame bool        // End the game when no swipe can move anything
	Footprints    []Footprint // Piece table; also used to validate the board size
	Tags          []string    // Visual tags for the default random provider
}

// DefaultOptions returns the standard rules on an 8×8 board.
func DefaultOptions() Options {
	return Options{
		Size:          8,
		InitialShapes: 3,
		LineBase:      DefaultLineBase,
		StuckEndsGame: true,
		Footprints:    DefaultFootprints(),
	}
}

// Validate checks the options against a board of the given size.
func (o Options) Validate(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if o.InitialShapes < 0 {
		return fmt.Errorf("blobblab: negative initial shape count %d", o.InitialShapes)
	}
	if len(o.Footprints) == 0 {
		return ErrEmptyPieceTable
	}
	for _, fp := range o.Footprints {
		if fp.Count() == 0 {
			return fmt.Errorf("%w: %q has no filled cells", ErrInvalidFootprint, fp.Name)
		}
		if !fp.FitsBoard(size) {
			return fmt.Errorf("%w: %q is %dx%d, larger than the %dx%d board",
				ErrInvalidFootprint, fp.Name, fp.Rows(), fp.Cols(), size, size)
		}
	}
	return nil
}

// TurnResult reports everything one swipe did.
type TurnResult struct {
	Moved           bool
	Passes          int
	ClearedCount    int // Distinct blocks removed by line clears
	LinesCleared    int // Full rows plus full columns
	ScoreDelta      int
	NewShapeSpawned bool
	SpawnedShape    ShapeID
	IsGameOver      bool
}

// Session drives whole turns: movement, line clears, spawning and the
// game-over checks. It is single-threaded; callers must not submit a new
// swipe while one is being processed.
type Session struct {
	opts     Options
	rng      *rand.Rand
	provider Provider
	board    *Board

	score    int
	turns    int
	gameOver bool
	busy     bool
}

// NewSession validates the options and creates a session.
// With a nil provider, pieces are drawn uniformly from opts.Footprints.
// The board is created by InitBoard.
func NewSession(opts Options, rng *rand.Rand, provider Provider) (*Session, error) {
	if opts.LineBase <= 0 {
		opts.LineBase = DefaultLineBase
	}
	if len(opts.Footprints) == 0 {
		return nil, ErrEmptyPieceTable
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if provider == nil {
		rp, err := NewRandomProvider(rng, opts.Footprints, opts.Tags)
		if err != nil {
			return nil, err
		}
		provider = rp
	}

	return &Session{
		opts:     opts,
		rng:      rng,
		provider: provider,
	}, nil
}

// InitBoard resets the grid and the registry for an n×n board, clears the
// score and spawns the initial pieces. Invalid sizes are refused.
func (s *Session) InitBoard(n int) error {
	if s.busy {
		return ErrTurnInProgress
	}
	if err := s.opts.Validate(n); err != nil {
		return err
	}

	if s.board != nil && s.board.Size() == n {
		s.board.Reset()
	} else {
		board, err := NewBoard(n, s.rng)
		if err != nil {
			return err
		}
		s.board = board
	}

	s.opts.Size = n
	s.score = 0
	s.turns = 0
	s.gameOver = false

	if r, ok := s.provider.(interface{ Reset() }); ok {
		r.Reset()
	}

	for i := 0; i < s.opts.InitialShapes; i++ {
		piece := s.provider.Next()
		if _, ok := s.board.Spawn(piece.Footprint, piece.Tag); !ok {
			s.gameOver = true
			break
		}
	}
	if !s.gameOver {
		s.gameOver = s.noMovesLeft()
	}
	return nil
}

// SubmitSwipe plays one full turn.
//
// A swipe that moves nothing is not a turn: the result has Moved=false and
// nothing else happens. Otherwise full lines clear, the next piece spawns,
// and the game ends if that piece found no room, the board is full, or
// (with StuckEndsGame) no swipe can move anything anymore.
func (s *Session) SubmitSwipe(dir Dir) (TurnResult, error) {
	if s.board == nil {
		return TurnResult{}, ErrNotInitialized
	}
	if s.busy {
		return TurnResult{}, ErrTurnInProgress
	}
	if s.gameOver {
		return TurnResult{IsGameOver: true}, nil
	}

	s.busy = true
	defer func() { s.busy = false }()

	mv := s.board.MoveDetailed(dir)
	res := TurnResult{Moved: mv.Moved, Passes: mv.Passes}
	if !mv.Moved {
		return res, nil
	}

	cl := s.board.ClearLinesScored(s.opts.LineBase)
	res.ClearedCount = cl.Cleared
	res.LinesCleared = cl.Lines()
	res.ScoreDelta = cl.ScoreDelta
	s.score += cl.ScoreDelta

	piece := s.provider.Next()
	if id, ok := s.board.Spawn(piece.Footprint, piece.Tag); ok {
		res.NewShapeSpawned = true
		res.SpawnedShape = id
		s.gameOver = s.noMovesLeft()
	} else {
		s.gameOver = true
	}

	s.turns++
	res.IsGameOver = s.gameOver
	return res, nil
}

// noMovesLeft applies the game-over oracles after a spawn.
func (s *Session) noMovesLeft() bool {
	if !s.board.HasEmptyCell() {
		return true
	}
	return s.opts.StuckEndsGame && !s.board.CanMoveAny()
}

// Forfeit ends the game immediately.
func (s *Session) Forfeit() {
	s.gameOver = true
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Turns returns the number of swipes that moved something.
func (s *Session) Turns() int {
	return s.turns
}

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Board returns the current board, or nil before InitBoard.
func (s *Session) Board() *Board {
	return s.board
}

// Options returns the session options.
func (s *Session) Options() Options {
	return s.opts
}

// Preview returns up to n upcoming pieces when the provider supports it.
func (s *Session) Preview(n int) []Piece {
	if p, ok := s.provider.(Previewer); ok {
		return p.Peek(n)
	}
	return nil
}

// Snapshot returns a read-only view of the board and the session status.
func (s *Session) Snapshot() Snapshot {
	if s.board == nil {
		return Snapshot{Score: s.score, GameOver: s.gameOver}
	}
	snap := s.board.Snapshot()
	snap.Score = s.score
	snap.Turns = s.turns
	snap.GameOver = s.gameOver
	return snap
}
