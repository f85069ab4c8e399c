package shell

import "github.com/wricardo/mcp-training/game2048/game/engine"

// Game2048 connects an engine to a presenter
type Game2048 struct {
	engine    *engine.GameEngine
	presenter Presenter
}

// NewGame2048 creates the game around an already seeded engine
func NewGame2048(eng *engine.GameEngine, presenter Presenter) *Game2048 {
	return &Game2048{engine: eng, presenter: presenter}
}

// Engine exposes the wrapped engine
func (g *Game2048) Engine() *engine.GameEngine {
	return g.engine
}

// Start draws the seeded board
func (g *Game2048) Start() {
	g.render()
}

// HandleInput applies a command. Once the game is over only restart is accepted.
func (g *Game2048) HandleInput(cmd Command) {
	if cmd == CommandRestart {
		if g.engine.IsGameOver() {
			g.engine.Reset()
			g.render()
		}
		return
	}
	if g.engine.IsGameOver() {
		return
	}

	dir, ok := cmd.Direction()
	if !ok {
		return
	}
	// A move that changes nothing still re-renders so the message updates
	g.engine.Move(dir)
	g.render()
}

// End clears whatever the presenter drew
func (g *Game2048) End() {
	g.presenter.Clear()
}

func (g *Game2048) render() {
	state := g.engine.GetState()
	g.presenter.Render(state, g.engine.LastTransitions())
	if state.GameOver {
		g.presenter.ShowGameOver(state)
	}
}
