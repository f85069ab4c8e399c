package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/wricardo/mcp-training/game2048/game/config"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
	"github.com/wricardo/mcp-training/game2048/game/shell"
	"github.com/wricardo/mcp-training/game2048/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service   service.GameService
	hub       *websocket.Hub
	router    *mux.Router
	staticDir string
}

// NewServer creates a new API server. When hub is set, browser input
// arriving over the WebSocket is played through the service.
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service:   gameService,
		hub:       hub,
		router:    mux.NewRouter(),
		staticDir: "./static/",
	}

	if hub != nil {
		hub.SetInputHandler(s.handleInput)
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Game operations
	api.HandleFunc("/sessions/{id}/state", s.handleGetGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/move", s.handleMove).Methods("POST")
	api.HandleFunc("/sessions/{id}/bulk-move", s.handleBulkMove).Methods("POST")
	api.HandleFunc("/sessions/{id}/reset", s.handleReset).Methods("POST")

	// Configuration
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs", s.handleCreateConfig).Methods("POST")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)

	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return http.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// broadcast pushes a state change to the session's WebSocket clients
func (s *Server) broadcast(sessionID, event string, state *engine.GameState, transitions []engine.Transition) {
	if s.hub == nil || state == nil {
		return
	}
	s.hub.BroadcastToSession(sessionID, event, state, transitions)
}

// moveEvent names the WebSocket event for a single move result
func moveEvent(result *service.MoveResult) string {
	switch {
	case result.GameState != nil && result.GameState.GameOver && result.Success:
		return service.EventGameOver
	case result.Success:
		return service.EventMove
	case len(result.Events) > 0 && result.Events[len(result.Events)-1].Type == service.EventInvalidDirection:
		return service.EventInvalidDirection
	default:
		return "no_change"
	}
}

func logMove(sessionID, direction string, result *service.MoveResult) {
	if st := result.Step; st != nil {
		log.Printf("[MOVE] session=%s dir=%s merges=%d score=%d->%d spawned=%d over=%v",
			sessionID, st.Dir, st.Merges, st.ScoreBefore, st.ScoreAfter, len(st.Spawned), st.GameOver)
		return
	}
	score := 0
	if result.GameState != nil {
		score = result.GameState.Score
	}
	log.Printf("[MOVE] session=%s dir=%q NOCHANGE score=%d", sessionID, direction, score)
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID   string `json:"config_id,omitempty"`
		ConfigName string `json:"config_name,omitempty"` // Deprecated, use config_id
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	configID := req.ConfigID
	if configID == "" {
		configID = req.ConfigName
	}

	session, err := s.service.CreateSession(r.Context(), configID)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total := len(sessions)

	query := r.URL.Query()
	sortBy := query.Get("sort") // "created", "accessed" (default), "score"
	order := query.Get("order") // "asc", "desc" (default)
	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if sortBy == "score" {
			if order == "asc" {
				return scoreOf(a) < scoreOf(b)
			}
			return scoreOf(a) > scoreOf(b)
		}

		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = a.CreatedAt, b.CreatedAt
		} else {
			ti, tj = a.LastAccessedAt, b.LastAccessedAt
		}
		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(sessions) {
			sessions = sessions[:l]
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(sessions),
		"total":    total,
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func scoreOf(info *service.SessionInfo) int {
	if info.GameState == nil {
		return 0
	}
	return info.GameState.Score
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := s.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if s.hub != nil {
		log.Printf("Session %s deleted, notifying %d websocket clients", sessionID, s.hub.ClientCount(sessionID))
		s.hub.BroadcastEvent(sessionID, service.EventSessionDeleted, map[string]string{"session_id": sessionID})
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// Game Operation Handlers

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := s.service.GetGameState(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Direction string `json:"direction"`
		Reset     bool   `json:"reset,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Direction) == "" {
		respondError(w, http.StatusBadRequest, "direction is required")
		return
	}

	result, err := s.service.Move(r.Context(), sessionID, req.Direction, req.Reset)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	s.broadcast(sessionID, moveEvent(result), result.GameState, result.Transitions)
	logMove(sessionID, req.Direction, result)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleBulkMove(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Moves []string `json:"moves"`
		Reset bool     `json:"reset,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.BulkMove(r.Context(), sessionID, req.Moves, req.Reset)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	event := "bulk_move"
	if result.GameOver {
		event = service.EventGameOver
	}
	s.broadcast(sessionID, event, result.GameState, nil)

	stop := result.StopReasonCode
	if stop == "" {
		stop = "none"
	}
	log.Printf("[BULK] session=%s exec=%d/%d stop=%s score=%d->%d max=%d",
		sessionID, result.MovesExecuted, result.RequestedMoves, stop, result.StartScore, result.EndScore, result.MaxTile)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := s.service.Reset(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	s.broadcast(sessionID, service.EventReset, state, state.Transitions)

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Game reset successfully",
		"state":   state,
	})
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	configName := strings.TrimSuffix(mux.Vars(r)["name"], ".json")

	cfg, err := s.service.LoadConfig(r.Context(), configName)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// configIDFromName turns a display name into a file-safe config id
func configIDFromName(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, id)
}

func (s *Server) handleCreateConfig(w http.ResponseWriter, r *http.Request) {
	var gameConfig engine.GameConfig
	if err := json.NewDecoder(r.Body).Decode(&gameConfig); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if gameConfig.Name == "" {
		respondError(w, http.StatusBadRequest, "Config name is required")
		return
	}

	configID := r.URL.Query().Get("id")
	if configID == "" {
		configID = configIDFromName(gameConfig.Name)
	}

	if err := s.service.SaveConfig(r.Context(), configID, &gameConfig); err != nil {
		respondError(w, statusFor(err), fmt.Sprintf("Failed to save config: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":   "Configuration saved successfully",
		"config_id": configID,
	})
}

// WebSocket Handlers

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}
	if s.hub == nil {
		http.Error(w, "WebSocket not available", http.StatusServiceUnavailable)
		return
	}

	if _, err := s.service.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, sessionID)
}

// handleInput plays a key or action sent by a browser over the WebSocket
func (s *Server) handleInput(sessionID, clientID, input string) {
	cmd, ok := shell.CommandFromKey(input)
	if !ok {
		log.Printf("[WS] session=%s client=%s ignored input %q", sessionID, clientID, input)
		return
	}

	ctx := context.Background()
	if cmd == shell.CommandRestart {
		state, err := s.service.Reset(ctx, sessionID)
		if err != nil {
			log.Printf("[WS] session=%s client=%s reset failed: %v", sessionID, clientID, err)
			return
		}
		s.broadcast(sessionID, service.EventReset, state, state.Transitions)
		return
	}

	result, err := s.service.Move(ctx, sessionID, string(cmd), false)
	if err != nil {
		log.Printf("[WS] session=%s client=%s move failed: %v", sessionID, clientID, err)
		return
	}
	s.broadcast(sessionID, moveEvent(result), result.GameState, result.Transitions)
	logMove(sessionID, string(cmd), result)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
