package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GameConfig describes a playable variant of the game
type GameConfig struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	InitialTiles  int    `json:"initial_tiles"`
	RestartTiles  int    `json:"restart_tiles,omitempty"`
	SpawnAttempts int    `json:"spawn_attempts,omitempty"`
	Messages      struct {
		Welcome  string `json:"welcome"`
		Moved    string `json:"moved"`
		CantMove string `json:"cant_move"`
		GameOver string `json:"game_over"`
		Restart  string `json:"restart,omitempty"`
	} `json:"messages"`
}

// DefaultGameConfig returns the built-in classic variant
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:          "classic",
		Description:   "Classic 2048: two starting tiles, one new tile after every move",
		InitialTiles:  DefaultInitialTiles,
		RestartTiles:  DefaultRestartTiles,
		SpawnAttempts: DefaultSpawnAttempts,
	}
	config.Messages.Welcome = "Slide the tiles and merge equal numbers!"
	config.Messages.Moved = "Score: %d"
	config.Messages.CantMove = "Nothing moves that way"
	config.Messages.GameOver = "No moves left! Final score: %d"
	config.Messages.Restart = "New game started"
	return config
}

// ApplyDefaults fills optional numeric fields left at zero
func (c *GameConfig) ApplyDefaults() {
	if c.RestartTiles == 0 {
		c.RestartTiles = DefaultRestartTiles
	}
	if c.SpawnAttempts == 0 {
		c.SpawnAttempts = DefaultSpawnAttempts
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate tile counts
	if config.InitialTiles < 1 || config.InitialTiles > CellCount {
		return fmt.Errorf("config validation: initial_tiles must be between 1 and %d, got %d", CellCount, config.InitialTiles)
	}
	if config.RestartTiles < 1 || config.RestartTiles > CellCount {
		return fmt.Errorf("config validation: restart_tiles must be between 1 and %d, got %d", CellCount, config.RestartTiles)
	}
	if config.SpawnAttempts < MinSpawnAttempts {
		return fmt.Errorf("config validation: spawn_attempts must be at least %d, got %d", MinSpawnAttempts, config.SpawnAttempts)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.CantMove == "" {
		return fmt.Errorf("config validation: messages.cant_move is required")
	}
	if config.Messages.GameOver == "" {
		return fmt.Errorf("config validation: messages.game_over is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.Moved, "%d") {
		return fmt.Errorf("config validation: messages.moved must contain %%d for score")
	}
	if !strings.Contains(config.Messages.GameOver, "%d") {
		return fmt.Errorf("config validation: messages.game_over must contain %%d for score")
	}

	return nil
}

// ParseGameConfig decodes JSON, applies defaults and validates the result
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	config.ApplyDefaults()

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return ParseGameConfig(data)
}

// InitGameStateFromConfig creates a fresh game state seeded with the
// variant's initial tiles. A nil config uses DefaultGameConfig.
func InitGameStateFromConfig(config *GameConfig, rng RandomSource) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}
	if rng == nil {
		rng = newDefaultRandom()
	}

	state := &GameState{
		Board:      NewBoard(),
		Status:     StatusActive,
		Message:    config.Messages.Welcome,
		ConfigName: config.Name,
	}

	spawned := state.Board.SpawnRandom(rng, config.InitialTiles, attemptsFor(config))
	state.Transitions = spawnTransitions(spawned)
	state.Score = state.Board.Score()
	state.refresh()
	return state
}

func attemptsFor(config *GameConfig) int {
	if config.SpawnAttempts > 0 {
		return config.SpawnAttempts
	}
	return DefaultSpawnAttempts
}

func newDefaultRandom() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
