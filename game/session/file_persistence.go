package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// FilePersistence implements SessionPersistence with one JSON file per session
type FilePersistence struct {
	sessionsDir   string
	configManager service.ConfigManager
}

// NewFilePersistence creates the sessions directory if needed
func NewFilePersistence(sessionsDir string, configManager service.ConfigManager) (*FilePersistence, error) {
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		sessionsDir:   sessionsDir,
		configManager: configManager,
	}, nil
}

// Save writes the session board and metadata to <dir>/<id>.json
func (fp *FilePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	configID, err := fp.configIDFor(session.Config.Name)
	if err != nil {
		return fmt.Errorf("failed to get config ID: %w", err)
	}

	data := PersistedSessionData{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file behind
	filePath := fp.filePath(session.ID)
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load rebuilds a session: the config is reloaded by id and the board is
// restored into a fresh engine
func (fp *FilePersistence) Load(id string) (*service.Session, error) {
	jsonData, err := os.ReadFile(fp.filePath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data PersistedSessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	if data.GameState == nil {
		return nil, fmt.Errorf("session %s has no game state", id)
	}

	gameConfig, err := fp.configManager.LoadConfig(data.ConfigName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s': %w", data.ConfigName, err)
	}

	gameEngine, err := engine.NewEngine(gameConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create game engine: %w", err)
	}
	if err := gameEngine.SetState(data.GameState); err != nil {
		return nil, fmt.Errorf("failed to set game state: %w", err)
	}

	return &service.Session{
		ID:             data.ID,
		Engine:         gameEngine,
		Config:         gameConfig,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

// Delete removes a session file
func (fp *FilePersistence) Delete(id string) error {
	if !fp.Exists(id) {
		return ErrSessionNotFound
	}

	if err := os.Remove(fp.filePath(id)); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

// ListAll returns all persisted session IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name := entry.Name(); strings.HasSuffix(name, ".json") {
			sessionIDs = append(sessionIDs, strings.TrimSuffix(name, ".json"))
		}
	}

	return sessionIDs, nil
}

// Exists checks if a session file exists
func (fp *FilePersistence) Exists(id string) bool {
	_, err := os.Stat(fp.filePath(id))
	return err == nil
}

func (fp *FilePersistence) filePath(id string) string {
	return filepath.Join(fp.sessionsDir, filepath.Base(id)+".json")
}

// configIDFor maps a display name back to its config id, falling back to the name itself
func (fp *FilePersistence) configIDFor(displayName string) (string, error) {
	configs, err := fp.configManager.ListConfigs()
	if err != nil {
		return "", fmt.Errorf("failed to list configs: %w", err)
	}

	for _, cfg := range configs {
		if cfg.Name == displayName {
			return cfg.ConfigID, nil
		}
	}

	return displayName, nil
}
