package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// RemoteClient plays games against a running server through the REST API
type RemoteClient struct {
	baseURL   string
	client    *http.Client
	sessionID string
}

func NewRemoteClient(baseURL string) *RemoteClient {
	return &RemoteClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *RemoteClient) post(ctx context.Context, path string, body any, target any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s failed: %s - %s", path, resp.Status, bytes.TrimSpace(data))
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// CreateSession starts a new session with configID and returns its opening state
func (c *RemoteClient) CreateSession(ctx context.Context, configID string) (*engine.GameState, error) {
	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.post(ctx, "/api/sessions", body, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if session.GameState == nil {
		return nil, fmt.Errorf("create session: response has no game state")
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

// Move plays one direction in the current session
func (c *RemoteClient) Move(ctx context.Context, dir engine.Direction) (*engine.GameState, error) {
	var result service.MoveResult
	path := "/api/sessions/" + url.PathEscape(c.sessionID) + "/move"
	if err := c.post(ctx, path, map[string]string{"direction": string(dir)}, &result); err != nil {
		return nil, err
	}
	if result.GameState == nil {
		return nil, fmt.Errorf("move %s: response has no game state", dir)
	}
	return result.GameState, nil
}

// playRemote plays one greedy game in a fresh session
func playRemote(ctx context.Context, c *RemoteClient, configID string, delay time.Duration) (GameResult, error) {
	state, err := c.CreateSession(ctx, configID)
	if err != nil {
		return GameResult{}, err
	}

	for moves := 0; moves < maxAutoplayMoves && !state.GameOver; moves++ {
		dir, ok := greedyDirection(state.Board)
		if !ok {
			break
		}
		if state, err = c.Move(ctx, dir); err != nil {
			return GameResult{}, err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	return GameResult{
		Score:   state.Score,
		Moves:   state.TotalMoves,
		MaxTile: state.MaxTile,
	}, nil
}

// analyzeRemote plays games sessions against the server at baseURL
func analyzeRemote(ctx context.Context, w io.Writer, baseURL, configID string, games int, delay time.Duration) error {
	if games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", games)
	}

	c := NewRemoteClient(baseURL)
	report := newReport(configID, games)
	for i := 0; i < games; i++ {
		result, err := playRemote(ctx, c, configID, delay)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "session %s: score %d, moves %d, max tile %d\n", c.sessionID, result.Score, result.Moves, result.MaxTile)
		report.add(result)
	}

	fmt.Fprintf(w, "\n=== Remote games on %s ===\n", baseURL)
	printReport(w, report)
	return nil
}
