package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// Command is an input understood by a game
type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandLeft    Command = "left"
	CommandRight   Command = "right"
	CommandRestart Command = "restart"
)

// CommandFromKey translates a key name into a command. Arrow keys, w/a/s/d
// and direction names move; space restarts.
func CommandFromKey(key string) (Command, bool) {
	switch key {
	case " ", "space", "Space", "restart":
		return CommandRestart, true
	}

	dir, err := engine.ParseDirection(key)
	if err != nil {
		return "", false
	}
	return Command(dir), true
}

// Direction returns the slide direction of a movement command
func (c Command) Direction() (engine.Direction, bool) {
	dir := engine.Direction(c)
	return dir, dir.Valid()
}

// Game is a playable screen the shell can start, feed and stop
type Game interface {
	Start()
	HandleInput(cmd Command)
	End()
}

// Presenter draws a game. Implementations map transitions to whatever
// animation they support.
type Presenter interface {
	Render(state *engine.GameState, transitions []engine.Transition)
	ShowGameOver(state *engine.GameState)
	Clear()
}

// Factory builds a fresh game each time its entry is navigated to
type Factory func() (Game, error)

// Shell owns the current game and routes input to it. Games never listen
// for input themselves.
type Shell struct {
	factories   map[string]Factory
	current     Game
	currentName string
}

// New creates a shell with no registered games
func New() *Shell {
	return &Shell{factories: make(map[string]Factory)}
}

// Register adds a named game. An empty name is reserved for the home screen.
func (s *Shell) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("game name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory for %q cannot be nil", name)
	}
	s.factories[name] = factory
	return nil
}

// Games lists the registered names in order
func (s *Shell) Games() []string {
	names := make([]string, 0, len(s.factories))
	for name := range s.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the name of the running game, "" on the home screen
func (s *Shell) Current() string {
	return s.currentName
}

// Navigate ends the running game and starts the named one. "" returns home.
func (s *Shell) Navigate(name string) error {
	var next Game
	if name != "" {
		factory, ok := s.factories[name]
		if !ok {
			return fmt.Errorf("unknown game %q (available: %s)", name, strings.Join(s.Games(), ", "))
		}
		game, err := factory()
		if err != nil {
			return fmt.Errorf("failed to create game %q: %w", name, err)
		}
		next = game
	}

	if s.current != nil {
		s.current.End()
	}

	s.current = next
	s.currentName = name
	if next != nil {
		next.Start()
	}
	return nil
}

// Dispatch feeds a key to the running game and reports whether it was bound
func (s *Shell) Dispatch(key string) bool {
	if s.current == nil {
		return false
	}
	cmd, ok := CommandFromKey(key)
	if !ok {
		return false
	}
	s.current.HandleInput(cmd)
	return true
}
