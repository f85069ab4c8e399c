package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the four slide directions
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Status is the session state of a game
type Status string

const (
	StatusActive   Status = "active"
	StatusTerminal Status = "terminal"
)

// TransitionKind describes what happened to a tile during a move
type TransitionKind string

const (
	TransitionSlide TransitionKind = "slide"
	TransitionMerge TransitionKind = "merge"
	TransitionSpawn TransitionKind = "spawn"
)

const (
	BoardSize = 4
	CellCount = BoardSize * BoardSize

	EmptyCell  = 0
	SpawnValue = 2

	// Validation constants
	DefaultInitialTiles  = 2
	DefaultRestartTiles  = 1
	DefaultSpawnAttempts = 1000
	MinSpawnAttempts     = CellCount
	MaxBulkMoves         = 50
	WebSocketBufferSize  = 256
)

var ErrInvalidDirection = errors.New("invalid direction")

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Transition is a single tile change produced by a move or a spawn.
// For a merge, both participating tiles are reported with the same To.
type Transition struct {
	Kind  TransitionKind `json:"kind"`
	From  Position       `json:"from"`
	To    Position       `json:"to"`
	Value int            `json:"value"` // value at To after the move
}

// Merged reports whether the tile took part in a merge
func (t Transition) Merged() bool {
	return t.Kind == TransitionMerge
}

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// GameState represents the complete game state
type GameState struct {
	Board       Board        `json:"board"`
	Score       int          `json:"score"`
	Status      Status       `json:"status"`
	GameOver    bool         `json:"game_over"`
	Message     string       `json:"message"`
	ConfigName  string       `json:"config_name"`
	TotalMoves  int          `json:"total_moves"`
	Transitions []Transition `json:"transitions,omitempty"` // from the last input only

	// Computed helper views (not required for core game logic)
	MaxTile       int         `json:"max_tile"`
	PossibleMoves []Direction `json:"possible_moves,omitempty"`
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s
	c.Transitions = cloneTransitions(s.Transitions)
	if s.PossibleMoves != nil {
		c.PossibleMoves = append([]Direction(nil), s.PossibleMoves...)
	}
	return &c
}

func cloneTransitions(ts []Transition) []Transition {
	if ts == nil {
		return nil
	}
	return append([]Transition(nil), ts...)
}

// ParseDirection accepts direction names, w/a/s/d and browser arrow key names
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "arrowup":
		return Up, nil
	case "down", "s", "arrowdown":
		return Down, nil
	case "left", "a", "arrowleft":
		return Left, nil
	case "right", "d", "arrowright":
		return Right, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
