package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidationConstants(t *testing.T) {
	tests := []struct {
		name     string
		actual   int
		expected int
	}{
		{"BoardSize", BoardSize, 4},
		{"CellCount", CellCount, 16},
		{"SpawnValue", SpawnValue, 2},
		{"DefaultInitialTiles", DefaultInitialTiles, 2},
		{"DefaultRestartTiles", DefaultRestartTiles, 1},
		{"DefaultSpawnAttempts", DefaultSpawnAttempts, 1000},
		{"MaxBulkMoves", MaxBulkMoves, 50},
		{"WebSocketBufferSize", WebSocketBufferSize, 256},
	}

	for _, test := range tests {
		if test.actual != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, test.actual)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"up", Up},
		{"UP", Up},
		{" w ", Up},
		{"ArrowUp", Up},
		{"down", Down},
		{"s", Down},
		{"ArrowDown", Down},
		{"Left", Left},
		{"a", Left},
		{"arrowleft", Left},
		{"right", Right},
		{"D", Right},
		{"ArrowRight", Right},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if err != nil {
				t.Fatalf("ParseDirection(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	for _, bad := range []string{"", "north", "space", "upp"} {
		if _, err := ParseDirection(bad); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Expected ErrInvalidDirection for %q, got %v", bad, err)
		}
	}
}

func TestTransitionMerged(t *testing.T) {
	if !(Transition{Kind: TransitionMerge}).Merged() {
		t.Error("Expected merge transition to report Merged")
	}
	if (Transition{Kind: TransitionSlide}).Merged() || (Transition{Kind: TransitionSpawn}).Merged() {
		t.Error("Only merge transitions report Merged")
	}
}

func TestGameStateJSONMarshaling(t *testing.T) {
	board := NewBoard()
	board.Set(0, 0, 4)
	board.Set(3, 1, 2)

	state := GameState{
		Board:      board,
		Score:      6,
		Status:     StatusActive,
		Message:    "Score: 6",
		ConfigName: "classic",
		TotalMoves: 3,
		Transitions: []Transition{
			{Kind: TransitionSpawn, From: Position{Row: 3, Col: 1}, To: Position{Row: 3, Col: 1}, Value: 2},
		},
		MaxTile:       4,
		PossibleMoves: []Direction{Down, Right},
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("Failed to marshal game state: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to decode raw JSON: %v", err)
	}
	for _, key := range []string{"board", "score", "status", "game_over", "message", "config_name", "total_moves", "transitions", "max_tile", "possible_moves"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected key %q in JSON", key)
		}
	}

	var decoded GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal game state: %v", err)
	}
	if decoded.Board != board {
		t.Errorf("Board mismatch:\n%s", decoded.Board)
	}
	if decoded.Score != 6 || decoded.Status != StatusActive || decoded.TotalMoves != 3 {
		t.Errorf("Scalar fields mismatch: %+v", decoded)
	}
	if len(decoded.Transitions) != 1 || decoded.Transitions[0].Kind != TransitionSpawn {
		t.Errorf("Transitions mismatch: %v", decoded.Transitions)
	}
}
