// Package engine provides the core game logic for the 2048 tile game.
//
// The engine package implements the game mechanics including:
//   - A fixed 4x4 board stored as an arena of 16 cell values
//   - Directional slide and merge resolution (up, down, left, right)
//   - Random tile spawning with a bounded number of draws
//   - Terminal (game over) detection using side-effect-free dry runs
//   - Configuration loading and validation for game variants
//
// Core Types:
//
// Board holds only cell values (0 for empty, otherwise a power of two).
// Every move reports the tile Transitions it produced so a presentation layer
// can animate the difference without the engine tracking any visual state.
// The Engine interface defines the session-level contract, implemented by
// GameEngine, which drives the active/terminal state machine.
//
// Usage:
//
//	config, err := engine.LoadGameConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide every tile to the left
//	changed := gameEngine.Move(engine.Left)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Sliding moves every tile as far as it can toward one edge. Two tiles of the
// same value that meet combine into one tile of double value, and a tile takes
// part in at most one merge per move. Every move that changes the board spawns
// one new tile of value 2. The game is over when the board is full and no
// direction would change it.
package engine
