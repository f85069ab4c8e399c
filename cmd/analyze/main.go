// Command analyze plays seeded autoplay games for every configuration in a
// directory and prints a short report per variant: mean score, mean number
// of moves and a histogram of the largest tile reached. With --url it plays
// against a running server through the REST API instead.
//
// The autoplay policy is greedy: it picks the direction that leaves the
// most empty cells after a dry preview, breaking ties in Directions order.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// maxAutoplayMoves bounds a single game in case a policy never reaches a terminal board
const maxAutoplayMoves = 100000

// GameResult is the outcome of one autoplay game
type GameResult struct {
	Score   int
	Moves   int
	MaxTile int
}

// Report aggregates the results for one configuration
type Report struct {
	Config    string
	Games     int
	MeanScore float64
	MeanMoves float64
	BestScore int
	MaxTiles  map[int]int

	totalScore, totalMoves int
}

func newReport(config string, games int) *Report {
	return &Report{
		Config:   config,
		Games:    games,
		MaxTiles: make(map[int]int),
	}
}

func (r *Report) add(result GameResult) {
	r.totalScore += result.Score
	r.totalMoves += result.Moves
	r.MaxTiles[result.MaxTile]++
	if result.Score > r.BestScore {
		r.BestScore = result.Score
	}
	r.MeanScore = float64(r.totalScore) / float64(r.Games)
	r.MeanMoves = float64(r.totalMoves) / float64(r.Games)
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "simulate greedy autoplay games for each configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "directory containing game configurations",
			},
			&cli.IntFlag{
				Name:  "games",
				Value: 20,
				Usage: "games to play per configuration",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "base random seed",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "play against a running server instead of local engines",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "classic",
				Usage: "config id used with --url",
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "pause between remote moves",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			games := int(cmd.Int("games"))
			if serverURL := cmd.String("url"); serverURL != "" {
				return analyzeRemote(ctx, os.Stdout, serverURL, cmd.String("config"), games, cmd.Duration("delay"))
			}
			return analyzeDir(os.Stdout, cmd.String("config-dir"), games, cmd.Int64("seed"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeDir(w io.Writer, dir string, games int, seed int64) error {
	if games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", games)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no configurations found in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", filepath.Base(file))
		config, err := engine.LoadGameConfig(file)
		if err != nil {
			fmt.Fprintf(w, "Error loading config: %v\n", err)
			continue
		}
		report, err := analyzeConfig(config, games, seed)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		printReport(w, report)
	}
	return nil
}

// analyzeConfig plays games autoplay games, seeding game i with seed+i
func analyzeConfig(config *engine.GameConfig, games int, seed int64) (*Report, error) {
	report := newReport(config.Name, games)
	for i := 0; i < games; i++ {
		result, err := playGame(config, seed+int64(i))
		if err != nil {
			return nil, err
		}
		report.add(result)
	}
	return report, nil
}

func playGame(config *engine.GameConfig, seed int64) (GameResult, error) {
	eng, err := engine.NewEngine(config, engine.WithRandomSource(rand.New(rand.NewSource(seed))))
	if err != nil {
		return GameResult{}, err
	}

	for moves := 0; moves < maxAutoplayMoves && !eng.IsGameOver(); moves++ {
		dir, ok := greedyDirection(eng.GetState().Board)
		if !ok {
			break
		}
		eng.Move(dir)
	}

	state := eng.GetState()
	return GameResult{
		Score:   state.Score,
		Moves:   state.TotalMoves,
		MaxTile: state.MaxTile,
	}, nil
}

// greedyDirection returns the changing direction that leaves the most empty cells
func greedyDirection(board engine.Board) (engine.Direction, bool) {
	best, bestEmpty := engine.Direction(""), -1
	for _, dir := range engine.Directions {
		next, changed := engine.PreviewMove(board, dir)
		if !changed {
			continue
		}
		if empty := next.EmptyCount(); empty > bestEmpty {
			best, bestEmpty = dir, empty
		}
	}
	return best, bestEmpty >= 0
}

func printReport(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Name: %s\n", r.Config)
	fmt.Fprintf(w, "Games: %d\n", r.Games)
	fmt.Fprintf(w, "Mean score: %.1f (best %d)\n", r.MeanScore, r.BestScore)
	fmt.Fprintf(w, "Mean moves: %.1f\n", r.MeanMoves)
	fmt.Fprintf(w, "Max tile histogram:\n")

	tiles := make([]int, 0, len(r.MaxTiles))
	for tile := range r.MaxTiles {
		tiles = append(tiles, tile)
	}
	sort.Ints(tiles)
	for _, tile := range tiles {
		count := r.MaxTiles[tile]
		fmt.Fprintf(w, "  %5d | %-20s %d\n", tile, strings.Repeat("#", barWidth(count, r.Games)), count)
	}
}

func barWidth(count, total int) int {
	if total == 0 {
		return 0
	}
	return count * 20 / total
}
