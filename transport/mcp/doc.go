// Package mcp exposes the 2048 REST API as Model Context Protocol tools.
//
// The Client is a thin proxy: every tool call is translated into a request
// against the REST API and the JSON response is rendered as text for the
// agent, with the board drawn as a right-aligned grid.
//
// Tools:
//   - create_session, list_sessions, get_session
//   - game_state, describe_cell
//   - move, bulk_move, reset_game
//   - list_configs, game_instructions
//
// The same MCP server is served over stdio (stdio-mcp mode) and over HTTP
// at /mcp by the main binary.
package mcp
