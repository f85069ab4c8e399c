package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// gameServiceImpl implements the GameService interface. Every engine call
// happens under mu so each session processes one input at a time.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return s.sessionInfo(session, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session, s.getConfigID(session.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// SaveAllSessions flushes every session while no input is being applied
func (s *gameServiceImpl) SaveAllSessions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.SaveAllSessions()
}

// Move executes a single move for a session. An unknown direction is not an
// error: the result reports it with an invalid_direction event.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	defer s.persist(sessionID, "move")

	events := []GameEvent{}
	if reset {
		sess.Engine.Reset()
		events = append(events, newEvent(EventReset, "Game reset to initial state", nil))
	}

	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return &MoveResult{
			Success:   false,
			GameState: sess.Engine.GetState(),
			Message:   err.Error(),
			Events:    append(events, newEvent(EventInvalidDirection, err.Error(), nil)),
		}, nil
	}

	step, moveEvents := s.applyMove(sess, dir, 1)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:   step.Changed,
		GameState: state,
		Message:   state.Message,
		Events:    append(events, moveEvents...),
	}
	if step.Changed {
		result.Transitions = sess.Engine.LastTransitions()
		result.Step = &step
	}

	return result, nil
}

// BulkMove executes multiple moves in sequence
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	defer s.persist(sessionID, "bulk moves")

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
	}

	if reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, newEvent(EventReset, "Game reset to initial state", nil))
	}
	result.StartScore = sess.Engine.GetScore()

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	for i, move := range moves {
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game is over"
			result.StopReasonCode = StopGameOver
			result.StoppedOnMove = i + 1
			break
		}

		dir, err := engine.ParseDirection(move)
		if err != nil {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d: %v", i+1, err)
			result.StopReasonCode = StopInvalidDirection
			result.StoppedOnMove = i + 1
			result.Events = append(result.Events, newEvent(EventInvalidDirection, err.Error(), nil))
			break
		}

		step, events := s.applyMove(sess, dir, i+1)
		if !step.Changed {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d (%s) changed nothing", i+1, dir)
			result.StopReasonCode = StopNoChange
			result.StoppedOnMove = i + 1
			break
		}

		result.MovesExecuted++
		result.Steps = append(result.Steps, step)
		result.Events = append(result.Events, events...)
	}

	endState := sess.Engine.GetState()
	result.GameState = endState
	result.EndScore = endState.Score
	result.ScoreDelta = endState.Score - result.StartScore
	result.GameOver = endState.GameOver
	result.Message = endState.Message
	result.MaxTile = endState.MaxTile
	result.PossibleMoves = sess.Engine.GetPossibleMoves()

	if result.GameOver && result.StopReasonCode == "" {
		result.StopReasonCode = StopGameOver
	}

	return result, nil
}

// Reset starts a new game in the session
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()
	s.persist(sessionID, "reset")

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// applyMove runs one move on the session engine and describes what happened
func (s *gameServiceImpl) applyMove(sess *Session, dir engine.Direction, idx int) (StepInfo, []GameEvent) {
	before := sess.Engine.GetScore()
	changed := sess.Engine.Move(dir)
	state := sess.Engine.GetState()

	step := StepInfo{
		Idx:         idx,
		Dir:         dir,
		Changed:     changed,
		ScoreBefore: before,
		ScoreAfter:  state.Score,
		GameOver:    state.GameOver,
	}
	if !changed {
		return step, nil
	}

	transitions := sess.Engine.LastTransitions()
	step.Merges = engine.CountMerges(transitions)
	step.Spawned = engine.SpawnedPositions(transitions)

	return step, extractMoveEvents(dir, state, transitions)
}

// persist saves the session, logging failures without failing the request
func (s *gameServiceImpl) persist(sessionID, after string) {
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after %s: %v", sessionID, after, err)
	}
}

func newEvent(eventType, message string, pos *engine.Position) GameEvent {
	return GameEvent{
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Position:  pos,
	}
}

// extractMoveEvents generates events from the transitions of a board-changing move
func extractMoveEvents(dir engine.Direction, state *engine.GameState, transitions []engine.Transition) []GameEvent {
	events := []GameEvent{
		newEvent(EventMove, fmt.Sprintf("Moved %s", dir), nil),
	}

	merged := make(map[engine.Position]bool)
	for _, t := range transitions {
		switch t.Kind {
		case engine.TransitionMerge:
			if merged[t.To] {
				continue
			}
			merged[t.To] = true
			pos := t.To
			events = append(events, newEvent(EventMerge,
				fmt.Sprintf("Merged into %d at (%d,%d)", t.Value, pos.Row, pos.Col), &pos))
		case engine.TransitionSpawn:
			pos := t.To
			events = append(events, newEvent(EventSpawn,
				fmt.Sprintf("New %d at (%d,%d)", t.Value, pos.Row, pos.Col), &pos))
		}
	}

	if state.GameOver {
		events = append(events, newEvent(EventGameOver, state.Message, nil))
	}

	return events
}
