package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName is the variant preferred as the default
const DefaultConfigName = "classic"

// Manager handles game configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// configName strips the .json extension and rejects names that would escape the directory
func configName(name string) (string, error) {
	name = strings.TrimSuffix(name, ".json")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: bad config name %q", ErrInvalidConfig, name)
	}
	return name, nil
}

// LoadConfig loads a configuration by name
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	name, err := configName(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.ApplyDefaults()

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ValidateConfig applies defaults to config and validates it
func (m *Manager) ValidateConfig(config *engine.GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	config.ApplyDefaults()
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Count returns the number of cached configurations
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs)
}

// ListConfigs returns information about all available configurations
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:     entry.Name(),
			ConfigID:     name, // identifier used for session creation
			Name:         config.Name,
			Description:  config.Description,
			InitialTiles: config.InitialTiles,
			RestartTiles: config.RestartTiles,
		})
	}

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops every cached configuration and reloads the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// loadDefaultConfig prefers classic, then the first valid file, then the built-in variant
func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig(DefaultConfigName)
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			config = engine.DefaultGameConfig()
		} else if config, err = m.LoadConfig(configs[0].ConfigID); err != nil {
			config = engine.DefaultGameConfig()
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
	return nil
}

// SaveConfig saves a configuration to disk
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	name, err := configName(name)
	if err != nil {
		return err
	}
	if err := m.ValidateConfig(config); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, name+".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[name] = config
	m.mu.Unlock()

	return nil
}
