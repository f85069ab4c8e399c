// Package config provides configuration management for the 2048 game server.
//
// The config package handles:
//   - Loading game variants from JSON files
//   - Configuration validation through the engine rules
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game variants are stored as JSON files in the configs directory. Each
// variant defines how many tiles seed a new game (initial_tiles), how many
// seed a restarted game (restart_tiles), the spawn draw ceiling
// (spawn_attempts) and the messages shown to the player.
//
// Available Configurations:
//   - classic: two starting tiles
//   - modern: one starting tile
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("modern")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// When no classic.json exists the first valid file becomes the default, and an
// empty directory falls back to the built-in classic variant.
package config
