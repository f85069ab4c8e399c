// Package api provides the HTTP REST API for the 2048 game server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (?sort=accessed|created|score&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current board, score and status
//   - POST /api/sessions/{id}/move - {"direction": "left", "reset": false}
//   - POST /api/sessions/{id}/bulk-move - {"moves": ["up", "left"], "reset": false}
//   - POST /api/sessions/{id}/reset - Start a new game
//
// Configuration:
//   - GET /api/configs - List variants
//   - GET /api/configs/{name} - Get one variant
//   - POST /api/configs - Save a variant (?id= overrides the id derived from the name)
//
// Other:
//   - GET /api/health
//   - GET /ws?session={id} - WebSocket updates and keyboard input
//   - / - Static browser client from ./static/
//
// Every state change is broadcast to the session's WebSocket clients as
// {"session_id", "event", "game_state", "transitions"}.
//
// Enriched Responses:
//
// Move responses carry the tile transitions of the move and a step record
// with merges, score before and after, and spawned positions. Bulk move
// responses report requested and executed counts, a stop_reason_code of
// game_over, no_change or invalid_direction with the 1-based move that
// stopped the run, per-step records and the score delta.
//
// Errors are returned as {"error": "message"} with 400, 404 or 500.
package api
