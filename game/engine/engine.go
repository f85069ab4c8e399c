package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	GetScore() int
	CellValue(row, col int) int

	// Movement operations
	Move(direction Direction) bool
	CanMove(direction Direction) bool
	GetPossibleMoves() []Direction

	// Board queries and spawning
	SpawnRandom(count int) []Position
	IsTerminal() bool
	LastTransitions() []Transition

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; callers serialise access.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    RandomSource
}

// Option customises a GameEngine at construction
type Option func(*GameEngine)

// WithRandomSource injects the source used for tile spawning
func WithRandomSource(rng RandomSource) Option {
	return func(e *GameEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig, opts ...Option) (*GameEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	config.ApplyDefaults()
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{config: config}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.rng == nil {
		engine.rng = newDefaultRandom()
	}

	engine.state = InitGameStateFromConfig(config, engine.rng)
	return engine, nil
}

// GetState returns a snapshot of the current game state. Later moves do not
// change a returned snapshot.
func (e *GameEngine) GetState() *GameState {
	return e.state.Clone()
}

// SetState replaces the game state (used for persistence loading). The engine
// keeps its own copy. Score, status and the computed views are derived from
// the board, so a stored game_over flag never overrides the board itself.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}

	next := state.Clone()
	next.Score = next.Board.Score()
	next.GameOver = next.Board.IsTerminal()
	if next.GameOver {
		next.Status = StatusTerminal
		if next.Message == "" {
			next.Message = fmt.Sprintf(e.config.Messages.GameOver, next.Score)
		}
	} else {
		next.Status = StatusActive
	}
	if next.ConfigName == "" {
		next.ConfigName = e.config.Name
	}
	next.refresh()

	e.state = next
	return nil
}

// Reset clears the board and seeds restart_tiles new tiles
func (e *GameEngine) Reset() *GameState {
	e.state.Board.Clear()
	spawned := e.state.Board.SpawnRandom(e.rng, e.config.RestartTiles, e.config.SpawnAttempts)

	e.state.Transitions = spawnTransitions(spawned)
	e.state.Score = e.state.Board.Score()
	e.state.Status = StatusActive
	e.state.GameOver = false
	e.state.TotalMoves = 0
	e.state.ConfigName = e.config.Name
	e.state.Message = e.config.Messages.Restart
	if e.state.Message == "" {
		e.state.Message = e.config.Messages.Welcome
	}
	e.state.refresh()

	return e.state.Clone()
}

// IsGameOver returns whether the game has reached the terminal state
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// CellValue returns the value at (row, col); it panics outside the board
func (e *GameEngine) CellValue(row, col int) int {
	return e.state.Board.CellValue(row, col)
}

// Move slides the board toward direction. A move that changes the board
// spawns one tile and re-checks for the terminal state. In the terminal
// state Move does nothing and returns false.
func (e *GameEngine) Move(direction Direction) bool {
	if e.state.GameOver || !direction.Valid() {
		return false
	}

	changed, transitions := e.state.Board.Slide(direction, false)
	if !changed {
		e.state.Transitions = nil
		e.state.Message = e.config.Messages.CantMove
		return false
	}

	spawned := e.state.Board.SpawnRandom(e.rng, 1, e.config.SpawnAttempts)
	e.state.Transitions = append(transitions, spawnTransitions(spawned)...)
	e.state.TotalMoves++
	e.state.Score = e.state.Board.Score()
	e.state.Message = fmt.Sprintf(e.config.Messages.Moved, e.state.Score)

	if e.state.Board.IsTerminal() {
		e.state.Status = StatusTerminal
		e.state.GameOver = true
		e.state.Message = fmt.Sprintf(e.config.Messages.GameOver, e.state.Score)
	}
	e.state.refresh()

	return true
}

// CanMove reports whether a move toward direction would change the board
func (e *GameEngine) CanMove(direction Direction) bool {
	if e.state.GameOver || !direction.Valid() {
		return false
	}
	return e.state.Board.CanMove(direction)
}

// GetPossibleMoves returns all directions that would change the board
func (e *GameEngine) GetPossibleMoves() []Direction {
	if e.state.GameOver {
		return nil
	}
	return e.state.Board.PossibleMoves()
}

// SpawnRandom places up to count new tiles without deciding anything about
// the game's status
func (e *GameEngine) SpawnRandom(count int) []Position {
	spawned := e.state.Board.SpawnRandom(e.rng, count, e.config.SpawnAttempts)
	e.state.Transitions = append(e.state.Transitions, spawnTransitions(spawned)...)
	e.state.Score = e.state.Board.Score()
	e.state.refresh()
	return spawned
}

// IsTerminal reports whether the board is full with no move left
func (e *GameEngine) IsTerminal() bool {
	return e.state.Board.IsTerminal()
}

// LastTransitions returns the tile transitions produced by the last input
func (e *GameEngine) LastTransitions() []Transition {
	return cloneTransitions(e.state.Transitions)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and starts a new game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	config.ApplyDefaults()
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameStateFromConfig(config, e.rng)
	return nil
}

// refresh recomputes the derived fields of the state
func (s *GameState) refresh() {
	s.MaxTile = s.Board.MaxTile()
	if s.GameOver {
		s.PossibleMoves = nil
		return
	}
	s.PossibleMoves = s.Board.PossibleMoves()
}
