package session

import (
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// SessionPersistence stores in-progress boards so a restarted server can
// resume them
type SessionPersistence interface {
	Save(session *service.Session) error
	Load(id string) (*service.Session, error)
	Delete(id string) error
	ListAll() ([]string, error)
	Exists(id string) bool
}

// PersistedSessionData is the on-disk form of a session
type PersistedSessionData struct {
	ID             string            `json:"id"`
	ConfigName     string            `json:"config_name"` // config id, not display name
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}
