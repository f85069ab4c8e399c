package engine

// SpawnRandom fills up to count empty cells with SpawnValue. Row and column
// are drawn independently from rng and occupied cells are redrawn. At most
// maxAttempts draws are made and spawning stops as soon as the board is full;
// neither case is an error. The filled positions are returned in spawn order.
func (b *Board) SpawnRandom(rng RandomSource, count, maxAttempts int) []Position {
	var spawned []Position
	for attempt := 0; len(spawned) < count && attempt < maxAttempts; attempt++ {
		if b.IsFull() {
			break
		}

		row, col := rng.Intn(BoardSize), rng.Intn(BoardSize)
		i := index(row, col)
		if b.cells[i] != EmptyCell {
			continue
		}

		b.cells[i] = SpawnValue
		spawned = append(spawned, positionOf(i))
	}
	return spawned
}

func spawnTransitions(positions []Position) []Transition {
	ts := make([]Transition, 0, len(positions))
	for _, p := range positions {
		ts = append(ts, Transition{Kind: TransitionSpawn, From: p, To: p, Value: SpawnValue})
	}
	return ts
}
