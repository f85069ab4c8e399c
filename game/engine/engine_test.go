package engine

import (
	"strings"
	"testing"
)

func createTestConfig() *GameConfig {
	config := &GameConfig{
		Name:          "engine-test",
		Description:   "Configuration for engine integration tests",
		InitialTiles:  2,
		RestartTiles:  1,
		SpawnAttempts: DefaultSpawnAttempts,
	}
	config.Messages.Welcome = "Welcome to engine test!"
	config.Messages.Moved = "Score: %d"
	config.Messages.CantMove = "Can't move there!"
	config.Messages.GameOver = "Game over with %d"
	config.Messages.Restart = "Again!"
	return config
}

// nearlyTerminalRows becomes terminal after a left move and a spawn at (3,3)
var nearlyTerminalRows = [BoardSize][BoardSize]int{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{0, 4, 2, 4},
}

var terminalRows = [BoardSize][BoardSize]int{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func newScriptedEngine(t *testing.T, values ...int) (*GameEngine, *scriptedRandom) {
	t.Helper()
	rng := &scriptedRandom{values: values}
	engine, err := NewEngine(createTestConfig(), WithRandomSource(rng))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine, rng
}

func TestNewEngine(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1)

	state := engine.GetState()
	if state.Status != StatusActive || engine.IsGameOver() {
		t.Error("Expected a new game to be active")
	}
	if state.Message != "Welcome to engine test!" {
		t.Errorf("Unexpected welcome message %q", state.Message)
	}
	if state.ConfigName != "engine-test" {
		t.Errorf("Expected config name engine-test, got %q", state.ConfigName)
	}
	if engine.GetScore() != 4 {
		t.Errorf("Expected two starting tiles (score 4), got %d", engine.GetScore())
	}
	if engine.CellValue(0, 0) != 2 || engine.CellValue(0, 1) != 2 {
		t.Errorf("Expected tiles at (0,0) and (0,1):\n%s", state.Board)
	}
	if len(engine.LastTransitions()) != 2 {
		t.Errorf("Expected 2 spawn transitions, got %v", engine.LastTransitions())
	}
	if state.MaxTile != 2 {
		t.Errorf("Expected max tile 2, got %d", state.MaxTile)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.InitialTiles = 0

	if _, err := NewEngine(config); err == nil {
		t.Error("Expected error for invalid config")
	}
	if _, err := NewEngine(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestNewEngine_DefaultConfig(t *testing.T) {
	engine, err := NewEngine(DefaultGameConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	if engine.GetConfig().Name != "classic" {
		t.Errorf("Expected classic config, got %q", engine.GetConfig().Name)
	}
	if engine.GetScore() != DefaultInitialTiles*SpawnValue {
		t.Errorf("Expected score %d, got %d", DefaultInitialTiles*SpawnValue, engine.GetScore())
	}
	if engine.GetState().Board.EmptyCount() != CellCount-DefaultInitialTiles {
		t.Error("Expected exactly the initial tiles on the board")
	}
}

func TestEngine_MoveMergesAndSpawns(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1, 3, 3)

	if !engine.Move(Left) {
		t.Fatal("Expected left to change the board")
	}

	state := engine.GetState()
	if state.Board.CellValue(0, 0) != 4 {
		t.Errorf("Expected merged 4 at (0,0):\n%s", state.Board)
	}
	if state.Board.CellValue(3, 3) != 2 {
		t.Errorf("Expected spawned 2 at (3,3):\n%s", state.Board)
	}
	if engine.GetScore() != 6 {
		t.Errorf("Expected score 6, got %d", engine.GetScore())
	}
	if state.TotalMoves != 1 {
		t.Errorf("Expected 1 move, got %d", state.TotalMoves)
	}
	if state.Message != "Score: 6" {
		t.Errorf("Unexpected message %q", state.Message)
	}

	transitions := engine.LastTransitions()
	if CountMerges(transitions) != 1 {
		t.Errorf("Expected one merge, got %v", transitions)
	}
	spawned := SpawnedPositions(transitions)
	if len(spawned) != 1 || spawned[0] != (Position{Row: 3, Col: 3}) {
		t.Errorf("Expected spawn at (3,3), got %v", spawned)
	}
}

func TestEngine_MoveWithoutChange(t *testing.T) {
	engine, rng := newScriptedEngine(t, 0, 0, 0, 1)
	draws := rng.calls

	if engine.Move(Up) {
		t.Error("Expected up to leave the top row unchanged")
	}
	if rng.calls != draws {
		t.Error("A move that changed nothing must not spawn")
	}
	if engine.GetState().Message != "Can't move there!" {
		t.Errorf("Unexpected message %q", engine.GetState().Message)
	}
	if engine.GetState().TotalMoves != 0 {
		t.Error("A move that changed nothing must not be counted")
	}
	if engine.LastTransitions() != nil {
		t.Errorf("Expected no transitions, got %v", engine.LastTransitions())
	}
}

func TestEngine_InvalidDirection(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1)
	before := engine.GetState().Board

	if engine.Move(Direction("diagonal")) {
		t.Error("Expected unknown direction to fail")
	}
	if engine.CanMove(Direction("diagonal")) {
		t.Error("Expected CanMove to reject unknown direction")
	}
	if engine.GetState().Board != before {
		t.Error("Unknown direction mutated the board")
	}
}

func TestEngine_CanMoveAndPossibleMoves(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1)

	possible := engine.GetPossibleMoves()
	want := map[Direction]bool{Down: true, Left: true, Right: true}
	if len(possible) != len(want) {
		t.Fatalf("Expected %d possible moves, got %v", len(want), possible)
	}
	for _, dir := range possible {
		if !want[dir] {
			t.Errorf("Unexpected possible move %s", dir)
		}
	}
	if engine.CanMove(Up) {
		t.Error("Expected up to be blocked")
	}
	if len(engine.GetState().PossibleMoves) != len(possible) {
		t.Error("State possible moves out of sync")
	}
}

func TestEngine_BecomesTerminal(t *testing.T) {
	engine, _ := newScriptedEngine(t, 3, 3)
	state := &GameState{Board: mustBoard(t, nearlyTerminalRows)}
	if err := engine.SetState(state); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	if !engine.Move(Left) {
		t.Fatal("Expected left to change the board")
	}

	if !engine.IsGameOver() || !engine.IsTerminal() {
		t.Fatalf("Expected terminal state:\n%s", engine.GetState().Board)
	}
	if engine.GetState().Status != StatusTerminal {
		t.Errorf("Expected status terminal, got %s", engine.GetState().Status)
	}
	if engine.GetScore() != 48 {
		t.Errorf("Expected score 48, got %d", engine.GetScore())
	}
	if engine.GetState().Message != "Game over with 48" {
		t.Errorf("Unexpected message %q", engine.GetState().Message)
	}
	if engine.GetPossibleMoves() != nil {
		t.Error("Expected no possible moves once terminal")
	}

	// terminal: every move is ignored
	before := engine.GetState().Board
	for _, dir := range Directions {
		if engine.Move(dir) {
			t.Errorf("Expected %s to be ignored in terminal state", dir)
		}
	}
	if engine.GetState().Board != before {
		t.Error("Board changed in terminal state")
	}
}

func TestEngine_ResetFromTerminal(t *testing.T) {
	engine, _ := newScriptedEngine(t, 1, 2)
	if err := engine.SetState(&GameState{Board: mustBoard(t, terminalRows), GameOver: true}); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	state := engine.Reset()

	if state.Score != 2 {
		t.Errorf("Expected score 2 after restart, got %d", state.Score)
	}
	if state.Status != StatusActive || state.GameOver {
		t.Error("Expected active state after restart")
	}
	if state.Board.CellValue(1, 2) != 2 || state.Board.EmptyCount() != CellCount-1 {
		t.Errorf("Expected a single tile at (1,2):\n%s", state.Board)
	}
	if state.Message != "Again!" {
		t.Errorf("Unexpected restart message %q", state.Message)
	}
	if state.TotalMoves != 0 {
		t.Errorf("Expected move counter reset, got %d", state.TotalMoves)
	}
	if len(state.Transitions) != 1 || state.Transitions[0].Kind != TransitionSpawn {
		t.Errorf("Expected one spawn transition, got %v", state.Transitions)
	}
}

func TestEngine_SetState(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1)

	if err := engine.SetState(nil); err == nil {
		t.Error("Expected error for nil state")
	}

	board := NewBoard()
	board.Set(2, 2, 64)
	board.Set(2, 3, 64)
	if err := engine.SetState(&GameState{Board: board, Score: 1, TotalMoves: 7}); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	state := engine.GetState()
	if state.Score != 128 {
		t.Errorf("Expected score recomputed to 128, got %d", state.Score)
	}
	if state.ConfigName != "engine-test" {
		t.Errorf("Expected config name filled in, got %q", state.ConfigName)
	}
	if state.MaxTile != 64 {
		t.Errorf("Expected max tile 64, got %d", state.MaxTile)
	}
	if state.TotalMoves != 7 {
		t.Errorf("Expected move counter preserved, got %d", state.TotalMoves)
	}
}

func TestEngine_SetStateDerivesStatusFromBoard(t *testing.T) {
	tests := []struct {
		name     string
		rows     [BoardSize][BoardSize]int
		gameOver bool
		wantOver bool
	}{
		{"stuck board without flag", terminalRows, false, true},
		{"stuck board with flag", terminalRows, true, true},
		{"playable board with stale flag", nearlyTerminalRows, true, false},
		{"playable board", nearlyTerminalRows, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newScriptedEngine(t, 0, 0, 0, 1, 3, 3)
			if err := engine.SetState(&GameState{Board: mustBoard(t, tt.rows), GameOver: tt.gameOver}); err != nil {
				t.Fatalf("SetState: %v", err)
			}

			state := engine.GetState()
			if engine.IsGameOver() != tt.wantOver || state.GameOver != tt.wantOver {
				t.Fatalf("Expected game over %v, got %v", tt.wantOver, engine.IsGameOver())
			}
			wantStatus := StatusActive
			if tt.wantOver {
				wantStatus = StatusTerminal
			}
			if state.Status != wantStatus {
				t.Errorf("Expected status %s, got %s", wantStatus, state.Status)
			}

			if tt.wantOver {
				if engine.Move(Left) {
					t.Error("Expected no move on a stuck board")
				}
				if state.Message != "Game over with 48" {
					t.Errorf("Unexpected message %q", state.Message)
				}
				return
			}
			if !engine.Move(Left) {
				t.Error("Expected left to change a playable board")
			}
		})
	}
}

func TestEngine_StateSnapshots(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1, 3, 3, 2, 2)

	snapshot := engine.GetState()
	board := snapshot.Board
	transitions := engine.LastTransitions()

	if !engine.Move(Right) {
		t.Fatal("Expected right to change the board")
	}
	engine.Reset()

	if snapshot.Board != board || snapshot.TotalMoves != 0 {
		t.Errorf("Snapshot changed after later moves:\n%s", snapshot.Board)
	}
	if len(transitions) != 2 || transitions[0].Kind != TransitionSpawn {
		t.Errorf("Transitions changed after later moves: %v", transitions)
	}

	snapshot.Board.Set(3, 0, 1024)
	if engine.CellValue(3, 0) == 1024 {
		t.Error("Editing a snapshot must not reach the engine")
	}

	supplied := &GameState{Board: mustBoard(t, nearlyTerminalRows)}
	if err := engine.SetState(supplied); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	supplied.Board.Clear()
	if engine.GetScore() == 0 || engine.CellValue(0, 0) != 2 {
		t.Error("SetState must keep its own copy of the state")
	}
}

func TestEngine_SpawnRandom(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1, 2, 2, 3, 0)

	spawned := engine.SpawnRandom(2)

	if len(spawned) != 2 {
		t.Fatalf("Expected 2 spawns, got %v", spawned)
	}
	if engine.GetScore() != 8 {
		t.Errorf("Expected score 8, got %d", engine.GetScore())
	}
	if engine.IsGameOver() {
		t.Error("Spawning must not end the game")
	}
}

func TestEngine_ConfigManagement(t *testing.T) {
	engine, _ := newScriptedEngine(t, 0, 0, 0, 1)

	newConfig := createTestConfig()
	newConfig.Name = "modern-test"
	newConfig.InitialTiles = 1
	newConfig.RestartTiles = 0
	newConfig.SpawnAttempts = 0

	if err := engine.SetConfig(newConfig); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if engine.GetConfig().Name != "modern-test" {
		t.Error("Config not replaced")
	}
	if engine.GetConfig().RestartTiles != DefaultRestartTiles || engine.GetConfig().SpawnAttempts != DefaultSpawnAttempts {
		t.Error("Expected defaults applied to zero fields")
	}
	if engine.GetScore() != 2 {
		t.Errorf("Expected a fresh game with one tile, got score %d", engine.GetScore())
	}

	bad := createTestConfig()
	bad.Messages.Moved = "no placeholder"
	if err := engine.SetConfig(bad); err == nil {
		t.Error("Expected error for invalid config")
	}
	if engine.GetConfig().Name != "modern-test" {
		t.Error("Invalid config must not replace the current one")
	}
	if err := engine.SetConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestEngine_RandomGamesReachTerminal(t *testing.T) {
	engine, err := NewEngine(DefaultGameConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	for i := 0; i < 100000 && !engine.IsGameOver(); i++ {
		prev := engine.GetScore()
		dir := Directions[i%len(Directions)]
		if engine.Move(dir) && engine.GetScore() != prev+SpawnValue {
			t.Fatalf("Expected score to grow by exactly %d, got %d -> %d", SpawnValue, prev, engine.GetScore())
		}
	}

	if !engine.IsGameOver() {
		t.Fatal("Expected cycling through directions to end the game")
	}
	if !engine.IsTerminal() || !engine.GetState().Board.IsFull() {
		t.Error("Game over without a full, stuck board")
	}
	if !strings.Contains(engine.GetState().Message, "No moves left") {
		t.Errorf("Unexpected final message %q", engine.GetState().Message)
	}
}
