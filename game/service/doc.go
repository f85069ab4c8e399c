// Package service provides the business logic layer for the 2048 game server.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration listing, loading and saving
//   - Single and bulk move processing with event extraction
//   - Session persistence hooks after every state change
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transports (HTTP, WebSocket, MCP) and
// the game engine. Each session owns its own engine; the service serialises
// every call so a session sees one input at a time.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, sessionInfo.ID, "left", false)
//
// Events:
//
// A board-changing move yields a move event, one merge event per merged
// destination, a spawn event per new tile and a game_over event when the
// board becomes terminal. Bulk moves stop at the first move that is invalid,
// changes nothing, or is attempted after the game ended.
package service
