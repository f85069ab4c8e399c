package engine

import (
	"fmt"
	"sort"
)

// Valid reports whether d is one of the four slide directions
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// cellAt maps a lane (the row or column a tile travels along) and a depth
// (distance from the destination edge) to a board index.
func cellAt(dir Direction, lane, depth int) int {
	switch dir {
	case Up:
		return index(depth, lane)
	case Down:
		return index(BoardSize-1-depth, lane)
	case Left:
		return index(lane, depth)
	case Right:
		return index(lane, BoardSize-1-depth)
	}
	panic(fmt.Sprintf("engine: unknown direction %q", dir))
}

// Slide moves every tile toward the edge named by dir, merging equal
// neighbours. Each pass visits source cells by increasing depth so the tile
// in front always settles before the tile behind it; a tile that merged is
// never combined again within the same slide.
//
// With dryRun the receiver is left untouched, no transitions are built and
// only the changed flag is meaningful.
func (b *Board) Slide(dir Direction, dryRun bool) (bool, []Transition) {
	work := *b

	// origin tracks where each tile started; merged travels with the tile
	var origin [CellCount]int
	var merged [CellCount]bool
	for i, v := range work.cells {
		origin[i] = -1
		if v != EmptyCell {
			origin[i] = i
		}
	}

	var absorbed []Transition
	changed := false

	for pass := 0; pass < BoardSize; pass++ {
		moved := false
		for depth := 1; depth < BoardSize; depth++ {
			for lane := 0; lane < BoardSize; lane++ {
				src := cellAt(dir, lane, depth)
				dst := cellAt(dir, lane, depth-1)

				v := work.cells[src]
				if v == EmptyCell {
					continue
				}

				switch next := work.cells[dst]; {
				case next == EmptyCell:
					work.cells[dst] = v
					origin[dst], merged[dst] = origin[src], merged[src]
				case next == v && !merged[src] && !merged[dst]:
					work.cells[dst] = v * 2
					merged[dst] = true
					if !dryRun {
						absorbed = append(absorbed, Transition{
							Kind:  TransitionMerge,
							From:  positionOf(origin[src]),
							To:    positionOf(dst),
							Value: v * 2,
						})
					}
				default:
					continue
				}

				work.cells[src] = EmptyCell
				origin[src], merged[src] = -1, false
				moved = true
			}
		}

		if !moved {
			break
		}
		changed = true
		if dryRun {
			return true, nil
		}
	}

	if !changed || dryRun {
		return changed, nil
	}

	transitions := absorbed
	for i, v := range work.cells {
		if v == EmptyCell || (origin[i] == i && !merged[i]) {
			continue
		}
		kind := TransitionSlide
		if merged[i] {
			kind = TransitionMerge
		}
		transitions = append(transitions, Transition{
			Kind:  kind,
			From:  positionOf(origin[i]),
			To:    positionOf(i),
			Value: v,
		})
	}
	sortTransitions(transitions)

	b.cells = work.cells
	return true, transitions
}

// Move slides the board in place and reports whether anything changed
func (b *Board) Move(dir Direction) bool {
	changed, _ := b.Slide(dir, false)
	return changed
}

// CanMove reports whether sliding toward dir would change the board
func (b Board) CanMove(dir Direction) bool {
	changed, _ := b.Slide(dir, true)
	return changed
}

// PossibleMoves returns every direction that would change the board
func (b Board) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if b.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// IsTerminal reports whether the board is full and no direction changes it
func (b Board) IsTerminal() bool {
	if !b.IsFull() {
		return false
	}
	for _, dir := range Directions {
		if b.CanMove(dir) {
			return false
		}
	}
	return true
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		ti := ts[i].To.Row*BoardSize + ts[i].To.Col
		tj := ts[j].To.Row*BoardSize + ts[j].To.Col
		if ti != tj {
			return ti < tj
		}
		return ts[i].From.Row*BoardSize+ts[i].From.Col < ts[j].From.Row*BoardSize+ts[j].From.Col
	})
}
