// Package websocket pushes live game updates to browsers and relays their
// keyboard input back into the game.
//
// A central Hub owns the client set of every session. Each connection gets a
// uuid client id and a read and a write goroutine; the write side pings the
// peer to keep idle connections alive.
//
// Message Protocol:
//
//   - Outgoing: {"session_id", "event", "game_state", "transitions"} after each
//     state change, one JSON document per frame
//   - Incoming: {"action": "left"} or {"key": "ArrowLeft"}, handed to the
//     InputHandler installed with SetInputHandler
//
// Usage:
//
//	hub := websocket.NewHub()
//	hub.SetInputHandler(func(sessionID, clientID, input string) { ... })
//	go hub.Run()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
package websocket
