package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

func createTestConfigDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}

func createValidConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:         "Test Config",
		Description:  "Test configuration",
		InitialTiles: 2,
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.Moved = "Score: %d"
	config.Messages.CantMove = "Can't move!"
	config.Messages.GameOver = "Game over! Score: %d"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		writeConfigFile(t, dir, "classic", createValidConfig())

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory uses built-in default", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("NewManager should succeed without config files, got error: %v", err)
		}

		defaultConfig := manager.GetDefault()
		if defaultConfig == nil {
			t.Fatal("Expected default config to be available")
		}
		if defaultConfig.Name != "classic" {
			t.Errorf("Expected built-in classic config, got %q", defaultConfig.Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	classic := createValidConfig()
	classic.Name = "Classic"
	writeConfigFile(t, dir, "classic", classic)

	modern := createValidConfig()
	modern.Name = "Modern"
	modern.InitialTiles = 1
	writeConfigFile(t, dir, "modern", modern)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("modern")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Modern" {
			t.Errorf("Expected config name 'Modern', got '%s'", config.Name)
		}
		if config.InitialTiles != 1 {
			t.Errorf("Expected 1 initial tile, got %d", config.InitialTiles)
		}
		if config.RestartTiles != engine.DefaultRestartTiles || config.SpawnAttempts != engine.DefaultSpawnAttempts {
			t.Error("Expected defaults applied to omitted fields")
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		config, err := manager.LoadConfig("modern.json")
		if err != nil {
			t.Fatalf("Failed to load config with extension: %v", err)
		}
		if config.Name != "Modern" {
			t.Errorf("Expected config name 'Modern', got '%s'", config.Name)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		config1, _ := manager.LoadConfig("modern")
		config2, err := manager.LoadConfig("modern")
		if err != nil {
			t.Fatalf("Failed to load config from cache: %v", err)
		}
		if config1 != config2 {
			t.Error("Expected config to be loaded from cache")
		}
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := manager.LoadConfig("non-existent")
		if err != ErrConfigNotFound {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("reject path traversal", func(t *testing.T) {
		_, err := manager.LoadConfig("../secrets")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("load invalid config", func(t *testing.T) {
		invalidData := []byte(`{"name": ""}`)
		if err := os.WriteFile(filepath.Join(dir, "invalid.json"), invalidData, 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err := manager.LoadConfig("invalid")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		malformedData := []byte(`{"name": "Malformed", invalid json}`)
		if err := os.WriteFile(filepath.Join(dir, "malformed.json"), malformedData, 0644); err != nil {
			t.Fatalf("Failed to write malformed config: %v", err)
		}

		if _, err := manager.LoadConfig("malformed"); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_GetDefault(t *testing.T) {
	t.Run("prefers classic", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		other := createValidConfig()
		other.Name = "Another"
		writeConfigFile(t, dir, "another", other)

		classic := createValidConfig()
		classic.Name = "Classic Config"
		writeConfigFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if got := manager.GetDefault().Name; got != "Classic Config" {
			t.Errorf("Expected classic to be default, got %q", got)
		}
	})

	t.Run("falls back to first valid", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		os.WriteFile(filepath.Join(dir, "aaa.json"), []byte(`{"name": ""}`), 0644)
		only := createValidConfig()
		only.Name = "Only Valid"
		writeConfigFile(t, dir, "bbb", only)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if got := manager.GetDefault().Name; got != "Only Valid" {
			t.Errorf("Expected first valid config, got %q", got)
		}
	})
}

func TestManager_SetDefault(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())
	modern := createValidConfig()
	modern.Name = "Modern"
	writeConfigFile(t, dir, "modern", modern)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("modern"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}
	if manager.GetDefault().Name != "Modern" {
		t.Errorf("Expected Modern default, got %q", manager.GetDefault().Name)
	}
	if err := manager.SetDefault("missing"); err != ErrConfigNotFound {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	configs := []struct {
		filename string
		name     string
		tiles    int
	}{
		{"classic", "Classic", 2},
		{"modern", "Modern", 1},
		{"crowded", "Crowded", 8},
	}

	for _, cfg := range configs {
		config := createValidConfig()
		config.Name = cfg.name
		config.InitialTiles = cfg.tiles
		writeConfigFile(t, dir, cfg.filename, config)
	}

	// ignored: not JSON, and invalid JSON config
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": "Broken"}`), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configList, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configList) != len(configs) {
		t.Errorf("Expected %d configs, got %d", len(configs), len(configList))
	}

	found := make(map[string]int)
	for _, info := range configList {
		found[info.ConfigID] = info.InitialTiles
		if info.Filename != info.ConfigID+".json" {
			t.Errorf("Unexpected filename %q for %q", info.Filename, info.ConfigID)
		}
	}

	for _, cfg := range configs {
		tiles, ok := found[cfg.filename]
		if !ok {
			t.Errorf("Config '%s' not found in list", cfg.filename)
			continue
		}
		if tiles != cfg.tiles {
			t.Errorf("Config '%s': expected %d initial tiles, got %d", cfg.filename, cfg.tiles, tiles)
		}
	}
}

func TestManager_RefreshCacheRereadsFiles(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	config := createValidConfig()
	config.Name = "Changeable"
	writeConfigFile(t, dir, "classic", config)
	writeConfigFile(t, dir, "changeable", config)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	loaded, _ := manager.LoadConfig("changeable")
	if loaded.InitialTiles != 2 {
		t.Errorf("Expected 2 initial tiles, got %d", loaded.InitialTiles)
	}

	config.InitialTiles = 4
	writeConfigFile(t, dir, "changeable", config)

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache: %v", err)
	}

	reloaded, _ := manager.LoadConfig("changeable")
	if reloaded.InitialTiles != 4 {
		t.Errorf("Expected reloaded initial tiles 4, got %d", reloaded.InitialTiles)
	}
}

func TestManager_RefreshCache(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())
	writeConfigFile(t, dir, "other", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	manager.LoadConfig("other")

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache: %v", err)
	}
	if manager.Count() != 1 {
		t.Errorf("Expected only the default cached after refresh, got %d", manager.Count())
	}
}

func TestManager_ValidateConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("valid config", func(t *testing.T) {
		if err := manager.ValidateConfig(createValidConfig()); err != nil {
			t.Errorf("Expected valid config to pass validation: %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		config := createValidConfig()
		config.Name = ""
		if err := manager.ValidateConfig(config); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("too many initial tiles", func(t *testing.T) {
		config := createValidConfig()
		config.InitialTiles = 17
		if err := manager.ValidateConfig(config); err == nil {
			t.Error("Expected error for 17 initial tiles")
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if err := manager.ValidateConfig(nil); err == nil {
			t.Error("Expected error for nil config")
		}
	})
}

func TestManager_SaveConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := createValidConfig()
	config.Name = "Saved"
	if err := manager.SaveConfig("saved", config); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "saved.json")); err != nil {
		t.Errorf("Expected saved.json on disk: %v", err)
	}

	loaded, err := manager.LoadConfig("saved")
	if err != nil || loaded.Name != "Saved" {
		t.Errorf("Expected saved config to load, got %v, %v", loaded, err)
	}

	bad := createValidConfig()
	bad.Messages.GameOver = "no score"
	if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := manager.SaveConfig("../escape", createValidConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for path traversal, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())
	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = fmt.Sprintf("Config%d", i)
		writeConfigFile(t, dir, fmt.Sprintf("config%d", i), config)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := manager.LoadConfig(fmt.Sprintf("config%d", id%5+1)); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
	if manager.Count() < 5 {
		t.Errorf("Expected at least 5 configs in cache, got %d", manager.Count())
	}
}

func TestManager_CachingBehavior(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())
	testConfig := createValidConfig()
	testConfig.Name = "Test"
	writeConfigFile(t, dir, "test", testConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	for i := 0; i < 10; i++ {
		config, err := manager.LoadConfig("test")
		if err != nil {
			t.Fatalf("Failed to load config on iteration %d: %v", i, err)
		}
		if config.Name != "Test" {
			t.Errorf("Unexpected config name on iteration %d", i)
		}
	}

	// classic (the default) and test
	if manager.Count() != 2 {
		t.Errorf("Expected 2 configs in cache, got %d", manager.Count())
	}
}
