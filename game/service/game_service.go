package service

import (
	"context"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// GameService defines all game-related operations. Returned game states are
// snapshots taken under the service lock; later moves never change them.
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// SaveAllSessions writes every in-memory session to persistence, if any
	SaveAllSessions(ctx context.Context) error

	// Game Operations

	// Move slides the board once. Only an unknown session is an error: an
	// unparseable direction yields Success=false with an invalid_direction
	// event, and a blocked move yields Success=false with no events. With
	// reset the board is restarted first.
	Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error)
	// BulkMove plays up to MaxBulkMoves directions and stops at game_over,
	// no_change or invalid_direction.
	BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error)
	// Reset clears the board and seeds restart_tiles tiles, at any time
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
	SaveAllSessions() error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
