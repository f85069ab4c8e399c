package engine

// PreviewMove returns the board that a move toward dir would produce,
// before any spawn, leaving b untouched
func PreviewMove(b Board, dir Direction) (Board, bool) {
	if !dir.Valid() {
		return b, false
	}
	changed, _ := b.Slide(dir, false)
	return b, changed
}

// CountMerges returns the number of merges described by transitions.
// Each merge reports two tiles, so pairs are counted once per destination.
func CountMerges(transitions []Transition) int {
	targets := make(map[Position]bool)
	for _, t := range transitions {
		if t.Kind == TransitionMerge {
			targets[t.To] = true
		}
	}
	return len(targets)
}

// SpawnedPositions returns the destinations of spawn transitions
func SpawnedPositions(transitions []Transition) []Position {
	var positions []Position
	for _, t := range transitions {
		if t.Kind == TransitionSpawn {
			positions = append(positions, t.To)
		}
	}
	return positions
}

// TileHistogram counts tiles on the board by value
func TileHistogram(b Board) map[int]int {
	histogram := make(map[int]int)
	for _, v := range b.cells {
		if v != EmptyCell {
			histogram[v]++
		}
	}
	return histogram
}
