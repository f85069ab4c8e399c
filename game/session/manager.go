package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
	ErrInvalidSessionID     = errors.New("invalid session ID")
)

// maxIDAttempts bounds retries when a generated ID collides
const maxIDAttempts = 32

// Manager is the in-memory session registry. Session IDs are matched
// case-insensitively.
type Manager struct {
	sessions    map[string]*service.Session
	persistence SessionPersistence
	mu          sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*service.Session),
	}
}

// NewManagerWithPersistence creates a session manager that writes through to persistence
func NewManagerWithPersistence(persistence SessionPersistence) *Manager {
	m := NewManager()
	m.persistence = persistence
	return m
}

func key(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Create starts a new game under id, generating a 4-character ID when id is empty
func (m *Manager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		generated, err := m.generateSessionID()
		if err != nil {
			return nil, err
		}
		id = generated
	} else if strings.ContainsAny(id, `/\`) || strings.TrimSpace(id) == "" {
		return nil, ErrInvalidSessionID
	}

	if _, exists := m.sessions[key(id)]; exists {
		return nil, ErrSessionAlreadyExists
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	now := time.Now()
	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.sessions[key(id)] = session

	if m.persistence != nil {
		if err := m.persistence.Save(session); err != nil {
			log.Printf("Warning: Failed to persist session %s: %v", id, err)
		}
	}

	return session, nil
}

// Get returns a session, loading it from persistence when it is not in memory
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[key(id)]
	m.mu.RUnlock()

	if exists {
		return session, nil
	}

	if m.persistence == nil || !m.persistence.Exists(id) {
		return nil, ErrSessionNotFound
	}

	loaded, err := m.persistence.Load(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have loaded it first
	if existing, ok := m.sessions[key(id)]; ok {
		return existing, nil
	}
	m.sessions[key(id)] = loaded

	return loaded, nil
}

// GetOrCreate gets an existing session or creates a new one
func (m *Manager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	session, err := m.Get(id)
	if err == nil {
		return session, nil
	}

	if errors.Is(err, ErrSessionNotFound) {
		return m.Create(id, config)
	}

	return nil, err
}

// List returns all sessions held in memory
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}

	return result
}

// Delete removes a session from memory and from persistence
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, inMemory := m.sessions[key(id)]
	delete(m.sessions, key(id))

	if m.persistence != nil && m.persistence.Exists(id) {
		if err := m.persistence.Delete(id); err != nil {
			return fmt.Errorf("failed to delete persisted session: %w", err)
		}
		return nil
	}

	if !inMemory {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteFromMemory evicts a session while keeping its persisted file
func (m *Manager) DeleteFromMemory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[key(id)]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, key(id))

	return nil
}

// UpdateLastAccessed touches the session's last access time
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[key(id)]
	if !exists {
		return ErrSessionNotFound
	}

	session.LastAccessedAt = time.Now()
	return nil
}

// Save writes a session to persistence; without persistence it is a no-op
func (m *Manager) Save(id string) error {
	if m.persistence == nil {
		return nil
	}

	m.mu.RLock()
	session, exists := m.sessions[key(id)]
	m.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}

	return m.persistence.Save(session)
}

// CleanupExpiredSessions evicts sessions idle for longer than maxAge.
// Persisted files are kept so the boards can still be resumed.
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, session := range m.sessions {
		if session.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of sessions held in memory
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// generateSessionID returns an unused 4 hex character ID; callers hold mu
func (m *Manager) generateSessionID() (string, error) {
	buf := make([]byte, 2)
	for i := 0; i < maxIDAttempts; i++ {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate session ID: %w", err)
		}
		id := hex.EncodeToString(buf)
		if _, taken := m.sessions[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate session ID after %d attempts", maxIDAttempts)
}

// LoadPersistedSessions loads every persisted session not already in memory
func (m *Manager) LoadPersistedSessions() error {
	if m.persistence == nil {
		return nil
	}

	sessionIDs, err := m.persistence.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list persisted sessions: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	loaded := 0
	for _, id := range sessionIDs {
		if _, exists := m.sessions[key(id)]; exists {
			continue
		}

		session, err := m.persistence.Load(id)
		if err != nil {
			log.Printf("Warning: Failed to load persisted session %s: %v", id, err)
			continue
		}

		m.sessions[key(id)] = session
		loaded++
	}

	if loaded > 0 {
		log.Printf("Loaded %d persisted sessions from storage", loaded)
	}

	return nil
}

// SaveAllSessions writes every in-memory session to persistence
func (m *Manager) SaveAllSessions() error {
	if m.persistence == nil {
		return nil
	}

	sessions := m.List()

	failed := 0
	for _, session := range sessions {
		if err := m.persistence.Save(session); err != nil {
			log.Printf("Warning: Failed to save session %s: %v", session.ID, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to save %d sessions", failed)
	}

	return nil
}
