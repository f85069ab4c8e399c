// Command tui plays 2048 in the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/game2048/game/config"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/shell"
)

const gameName = "2048"

func main() {
	cmd := &cli.Command{
		Name:  "tui",
		Usage: "play 2048 in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "classic",
				Usage:   "config id to play",
				Sources: cli.EnvVars("GAME_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed for tile spawns (0 picks one from the clock)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	configs, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}
	cfg, err := configs.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	presenter := newBoardPresenter()
	sh, err := newShell(cfg, cmd.Int64("seed"), presenter)
	if err != nil {
		return err
	}

	program := tea.NewProgram(newModel(sh, presenter, cfg.Name), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// newShell registers the 2048 game and navigates to it
func newShell(cfg *engine.GameConfig, seed int64, presenter shell.Presenter) (*shell.Shell, error) {
	sh := shell.New()
	err := sh.Register(gameName, func() (shell.Game, error) {
		var opts []engine.Option
		if seed != 0 {
			opts = append(opts, engine.WithRandomSource(rand.New(rand.NewSource(seed))))
		}
		eng, err := engine.NewEngine(cfg, opts...)
		if err != nil {
			return nil, err
		}
		return shell.NewGame2048(eng, presenter), nil
	})
	if err != nil {
		return nil, err
	}
	if err := sh.Navigate(gameName); err != nil {
		return nil, err
	}
	return sh, nil
}
