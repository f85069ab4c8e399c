// Command validate checks the game configuration JSON files in a directory.
// It checks:
//   - JSON structure, rejecting unknown fields
//   - Required fields and tile counts via engine.ValidateGameConfig
//   - Message format strings
//   - Playability: a fresh game starts with initial_tiles tiles and is not over
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single configuration JSON file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}
	config.ApplyDefaults()

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%v", err)
		return result
	}

	if playable := validatePlayable(&config); !playable.Valid {
		result.Valid = false
		result.Errors = append(result.Errors, playable.Errors...)
		return result
	}

	result.Errors = append(result.Errors,
		fmt.Sprintf("✓ Name: %s", config.Name),
		fmt.Sprintf("✓ Initial tiles: %d", config.InitialTiles),
		fmt.Sprintf("✓ Restart tiles: %d", config.RestartTiles),
		fmt.Sprintf("✓ Spawn attempts: %d", config.SpawnAttempts),
	)
	return result
}

// validatePlayable starts a game from config and checks the opening board
func validatePlayable(config *engine.GameConfig) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}

	eng, err := engine.NewEngine(config)
	if err != nil {
		result.fail("Cannot start a game: %v", err)
		return result
	}

	state := eng.GetState()
	if tiles := engine.CellCount - state.Board.EmptyCount(); tiles != config.InitialTiles {
		result.fail("Expected %d starting tiles, got %d", config.InitialTiles, tiles)
	}
	if state.GameOver {
		result.fail("Game is over before the first move")
	}
	return result
}

// validateDir validates every *.json file in dir and writes a report to w.
// It returns false if any file is invalid.
func validateDir(w io.Writer, dir string) (bool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return false, fmt.Errorf("error finding config files: %w", err)
	}
	if len(files) == 0 {
		return false, fmt.Errorf("no config files found in %s", dir)
	}
	sort.Strings(files)

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid, nil
}

// main validates the configuration directory, exiting with non-zero status
// if any file is invalid
func main() {
	cmd := &cli.Command{
		Name:  "validate",
		Usage: "validate game configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "../configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ok, err := validateDir(os.Stdout, cmd.String("config-dir"))
			if err != nil {
				return err
			}
			if !ok {
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
