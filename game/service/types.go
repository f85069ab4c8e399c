package service

import (
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// Event types reported in GameEvent.Type
const (
	EventReset            = "reset"
	EventMove             = "move"
	EventMerge            = "merge"
	EventSpawn            = "spawn"
	EventGameOver         = "game_over"
	EventInvalidDirection = "invalid_direction"
	EventSessionDeleted   = "session_deleted"
)

// Stop codes reported in BulkMoveResult.StopReasonCode
const (
	StopGameOver         = "game_over"
	StopNoChange         = "no_change"
	StopInvalidDirection = "invalid_direction"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success     bool                `json:"success"`
	GameState   *engine.GameState   `json:"game_state"`
	Message     string              `json:"message"`
	Events      []GameEvent         `json:"events,omitempty"`
	Transitions []engine.Transition `json:"transitions,omitempty"`
	Step        *StepInfo           `json:"step,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`   // Human-readable reason
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // game_over|no_change|invalid_direction
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartScore int `json:"start_score"`
	EndScore   int `json:"end_score"`
	ScoreDelta int `json:"score_delta"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Final status aids
	GameOver      bool               `json:"game_over"`
	Message       string             `json:"message,omitempty"`
	PossibleMoves []engine.Direction `json:"possible_moves,omitempty"`
	MaxTile       int                `json:"max_tile"`
}

// StepInfo is a compact record for each executed move
type StepInfo struct {
	Idx         int               `json:"idx"`
	Dir         engine.Direction  `json:"dir"`
	Changed     bool              `json:"changed"`
	Merges      int               `json:"merges"`
	ScoreBefore int               `json:"score_before"`
	ScoreAfter  int               `json:"score_after"`
	Spawned     []engine.Position `json:"spawned,omitempty"`
	GameOver    bool              `json:"game_over,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // see Event* constants
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	InitialTiles int    `json:"initial_tiles"`
	RestartTiles int    `json:"restart_tiles"`
}
