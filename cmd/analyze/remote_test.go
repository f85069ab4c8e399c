package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/game2048/api"
	"github.com/wricardo/mcp-training/game2048/game/config"
	"github.com/wricardo/mcp-training/game2048/game/service"
	"github.com/wricardo/mcp-training/game2048/game/session"
)

func newGameServer(t *testing.T) *httptest.Server {
	t.Helper()
	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("config.NewManager: %v", err)
	}
	ts := httptest.NewServer(api.NewServer(service.NewGameService(session.NewManager(), configManager), nil))
	t.Cleanup(ts.Close)
	return ts
}

func TestPlayRemote(t *testing.T) {
	ts := newGameServer(t)
	c := NewRemoteClient(ts.URL)

	result, err := playRemote(context.Background(), c, "modern", 0)
	if err != nil {
		t.Fatalf("playRemote: %v", err)
	}
	if c.sessionID == "" {
		t.Error("Expected a session to be created")
	}
	if result.Moves == 0 || result.MaxTile < 4 {
		t.Errorf("Unexpected result %+v", result)
	}
}

func TestAnalyzeRemote(t *testing.T) {
	ts := newGameServer(t)

	var out bytes.Buffer
	if err := analyzeRemote(context.Background(), &out, ts.URL, "classic", 2, 0); err != nil {
		t.Fatalf("analyzeRemote: %v", err)
	}

	text := out.String()
	if strings.Count(text, "session ") != 2 {
		t.Errorf("Expected two session lines:\n%s", text)
	}
	if !strings.Contains(text, "Games: 2") || !strings.Contains(text, "Max tile histogram:") {
		t.Errorf("Unexpected report:\n%s", text)
	}
}

func TestRemoteClient_Errors(t *testing.T) {
	ts := newGameServer(t)
	c := NewRemoteClient(ts.URL)
	ctx := context.Background()

	if _, err := c.CreateSession(ctx, "no-such-config"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected 404 error for unknown config, got %v", err)
	}

	c.sessionID = "zzzz"
	if _, err := c.Move(ctx, "left"); err == nil {
		t.Error("Expected error for unknown session")
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "abcd"}`))
	}))
	defer broken.Close()
	if _, err := NewRemoteClient(broken.URL).CreateSession(ctx, ""); err == nil {
		t.Error("Expected error for response without game state")
	}

	if err := analyzeRemote(ctx, &bytes.Buffer{}, ts.URL, "classic", 0, 0); err == nil {
		t.Error("Expected error for zero games")
	}
}
