package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wricardo/mcp-training/game2048/game/engine"
)

const tileWidth = 6

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	spawnMarker = lipgloss.NewStyle().Underline(true)

	// tile colors by value, larger values fall back to the last entry
	tileColors = []struct {
		value  int
		fg, bg string
	}{
		{2, "235", "230"},
		{4, "235", "223"},
		{8, "231", "215"},
		{16, "231", "209"},
		{32, "231", "203"},
		{64, "231", "196"},
		{128, "235", "228"},
		{256, "235", "227"},
		{512, "235", "226"},
		{1024, "235", "220"},
		{2048, "231", "214"},
	}
)

// boardPresenter keeps the last frame the game rendered; View draws it
type boardPresenter struct {
	state    *engine.GameState
	spawned  map[engine.Position]bool
	merged   map[engine.Position]bool
	gameOver bool
}

func newBoardPresenter() *boardPresenter {
	return &boardPresenter{}
}

func (p *boardPresenter) Render(state *engine.GameState, transitions []engine.Transition) {
	p.state = state
	p.gameOver = false
	p.spawned = make(map[engine.Position]bool)
	p.merged = make(map[engine.Position]bool)
	for _, t := range transitions {
		switch t.Kind {
		case engine.TransitionSpawn:
			p.spawned[t.To] = true
		case engine.TransitionMerge:
			p.merged[t.To] = true
		}
	}
}

func (p *boardPresenter) ShowGameOver(state *engine.GameState) {
	p.state = state
	p.gameOver = true
}

func (p *boardPresenter) Clear() {
	*p = boardPresenter{}
}

func tileStyle(value int) lipgloss.Style {
	style := lipgloss.NewStyle().Width(tileWidth).Align(lipgloss.Center).Bold(true)
	colors := tileColors[len(tileColors)-1]
	for _, c := range tileColors {
		if c.value == value {
			colors = c
			break
		}
	}
	return style.Foreground(lipgloss.Color(colors.fg)).Background(lipgloss.Color(colors.bg))
}

func (p *boardPresenter) renderTile(row, col int) string {
	value := p.state.Board.CellValue(row, col)
	if value == engine.EmptyCell {
		return emptyTileStyle.Render("·")
	}

	label := fmt.Sprintf("%d", value)
	pos := engine.Position{Row: row, Col: col}
	switch {
	case p.merged[pos]:
		label = "+" + label
	case p.spawned[pos]:
		label = spawnMarker.Render(label)
	}
	return tileStyle(value).Render(label)
}

// View draws the board with score and key help
func (p *boardPresenter) View(configName string) string {
	if p.state == nil {
		return statusStyle.Render("No game running") + "\n"
	}

	rows := make([]string, 0, engine.BoardSize)
	for r := 0; r < engine.BoardSize; r++ {
		cells := make([]string, 0, engine.BoardSize)
		for c := 0; c < engine.BoardSize; c++ {
			cells = append(cells, p.renderTile(r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("2048") + "  " + statusStyle.Render(configName) + "\n")
	sb.WriteString(boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n")
	sb.WriteString(fmt.Sprintf("Score: %d   Max tile: %d   Moves: %d\n",
		p.state.Score, p.state.MaxTile, p.state.TotalMoves))

	if p.gameOver {
		sb.WriteString(overStyle.Render(p.state.Message) + "\n")
		sb.WriteString(statusStyle.Render("space: new game  q: quit") + "\n")
	} else {
		if p.state.Message != "" {
			sb.WriteString(statusStyle.Render(p.state.Message) + "\n")
		}
		sb.WriteString(statusStyle.Render("arrows/wasd: move  q: quit") + "\n")
	}
	return sb.String()
}
