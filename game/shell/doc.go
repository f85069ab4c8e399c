// Package shell hosts games behind a presentation-agnostic interface.
//
// A Shell holds a registry of game factories and the game currently on
// screen. Front ends translate their native key events into key names and
// call Dispatch; the running Game turns the resulting Command into engine
// calls and hands the new state and tile transitions to its Presenter.
// Navigate ends the running game before starting the next one, so no game
// outlives its screen.
package shell
