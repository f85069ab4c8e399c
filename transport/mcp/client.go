package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"2048",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`2048 - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Slide the tiles of a 4x4 board. Equal tiles that collide merge into one tile
holding their sum. A new 2 appears after every move that changes the board.
The game ends when no direction can change the board.

AVAILABLE TOOLS:
- create_session: Create new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get current board and score
- move: Single move (up/down/left/right) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- reset_game: Start a new game in the same session
- list_configs: List available configurations
- game_instructions: Get the full rules
- describe_cell: Get the value of one cell (row/col, 0-3)

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Config identifier from list_configs (optional, defaults to classic)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"sort": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"accessed", "created", "score"},
					"description": "Sort key (default accessed)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of sessions to return",
				},
			},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, score and available moves",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide every tile in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Explain why you chose this move",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Start a new game before moving",
				},
			},
			Required: []string{"session_id", "direction", "intent"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: fmt.Sprintf("Execute up to %d moves in sequence. Stops early when the game ends, a move changes nothing, or a direction is invalid.", engine.MaxBulkMoves),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"up", "down", "left", "right"},
					},
					"description": "Directions to apply in order",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Explain the plan behind this sequence",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Start a new game before moving",
				},
			},
			Required: []string{"session_id", "moves", "intent"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Clear the board and start a new game in the same session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get the value of a single cell. Row 0 is the top row, column 0 is the leftmost column.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell (0-3)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell (0-3)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func sessionPath(sessionID string, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, http.MethodPost, "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	if session.GameState != nil {
		result += "\n" + formatGameState(session.GameState)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	query := url.Values{}
	if sortBy, ok := args["sort"].(string); ok && sortBy != "" {
		query.Set("sort", sortBy)
	}
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", int(limit)))
	}
	path := "/api/sessions"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var response struct {
		Count    int                   `json:"count"`
		Total    int                   `json:"total"`
		Sessions []service.SessionInfo `json:"sessions"`
	}
	if err := c.apiCall(ctx, http.MethodGet, path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Active Sessions (%d of %d):\n\n", response.Count, response.Total)
	for _, s := range response.Sessions {
		score, status := 0, engine.StatusActive
		if s.GameState != nil {
			score, status = s.GameState.Score, s.GameState.Status
		}
		fmt.Fprintf(&sb, "- %s (Config: %s, Score: %d, Status: %s, Created: %s)\n",
			s.ID, s.ConfigName, score, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, http.MethodGet, sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, http.MethodGet, sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	reset, _ := args["reset"].(bool)

	// intent is only for the caller's own reasoning

	body := map[string]interface{}{
		"direction": direction,
		"reset":     reset,
	}

	var result service.MoveResult
	if err := c.apiCall(ctx, http.MethodPost, sessionPath(sessionID, "/move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	reset, _ := args["reset"].(bool)

	moves := make([]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		if move, ok := m.(string); ok {
			moves = append(moves, move)
		}
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	if err := c.apiCall(ctx, http.MethodPost, sessionPath(sessionID, "/bulk-move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(sessionID, &result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, http.MethodPost, sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, http.MethodGet, "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	sb.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&sb, "• %s (config_id: %s)\n  %s\n  Initial tiles: %d, Tiles after restart: %d\n\n",
			config.Name, config.ConfigID, config.Description, config.InitialTiles, config.RestartTiles)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `2048 - Complete Instructions

GAME OBJECTIVE:
Merge tiles to build the largest number you can. The score is the sum of
every tile on the board.

BOARD:
• 4 rows by 4 columns, row 0 at the top and column 0 at the left
• Empty cells are shown as '.'
• Every tile holds a power of two

MOVEMENT COMMANDS:
• up, down, left, right (w/a/s/d and ArrowUp/ArrowDown/ArrowLeft/ArrowRight also work)
• Every tile slides as far as it can toward the chosen edge
• Two equal tiles that meet merge into one tile holding their sum
• A tile merges at most once per move; [2,2,2,2] left becomes [4,4,.,.]
• Tiles closest to the destination edge merge first; [2,2,2,.] left becomes [4,2,.,.]

SPAWNING:
• After every move that changes the board, a 2 appears on a random empty cell
• A move that changes nothing does not spawn a tile and does not count as a move

GAME OVER:
• The game ends when the board is full and no direction can merge anything
• After game over only reset_game (or move with reset=true) has an effect

STRATEGY TIPS:
• Keep your largest tile in a corner and build along one edge
• Avoid the direction that pulls the big tile out of its corner
• Use describe_cell to double-check a value before planning a long bulk_move
• bulk_move stops at the first move that changes nothing, so plan each step

Good luck reaching 2048!`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	row, rowOK := args["row"].(float64)
	col, colOK := args["col"].(float64)
	if !rowOK || !colOK || row != math.Trunc(row) || col != math.Trunc(col) {
		return mcp.NewToolResultError("row and col are required integers"), nil
	}
	if row < 0 || row >= engine.BoardSize || col < 0 || col >= engine.BoardSize {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%v, %v) are out of bounds. Board size is %dx%d (0-%d for both row and col)",
			row, col, engine.BoardSize, engine.BoardSize, engine.BoardSize-1)), nil
	}
	r, cl := int(row), int(col)

	var state engine.GameState
	if err := c.apiCall(ctx, http.MethodGet, sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	value := state.Board.CellValue(r, cl)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Cell (row %d, col %d): ", r, cl)
	if value == engine.EmptyCell {
		sb.WriteString("empty\n")
	} else {
		fmt.Fprintf(&sb, "%d\n", value)
	}

	sb.WriteString("\nNeighbors:\n")
	neighbors := []struct {
		name   string
		dr, dc int
	}{
		{"above", -1, 0},
		{"below", 1, 0},
		{"left", 0, -1},
		{"right", 0, 1},
	}
	for _, n := range neighbors {
		nr, nc := r+n.dr, cl+n.dc
		if nr < 0 || nr >= engine.BoardSize || nc < 0 || nc >= engine.BoardSize {
			fmt.Fprintf(&sb, "  %s: edge\n", n.name)
			continue
		}
		nv := state.Board.CellValue(nr, nc)
		switch {
		case nv == engine.EmptyCell:
			fmt.Fprintf(&sb, "  %s: empty\n", n.name)
		case nv == value:
			fmt.Fprintf(&sb, "  %s: %d (can merge)\n", n.name, nv)
		default:
			fmt.Fprintf(&sb, "  %s: %d\n", n.name, nv)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	result := fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\nLast Accessed: %s\n\n",
		session.ID, session.ConfigName,
		session.CreatedAt.Format(time.RFC3339), session.LastAccessedAt.Format(time.RFC3339))
	return result + formatGameState(session.GameState)
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available\n"
	}

	var sb strings.Builder
	sb.WriteString("Board:\n")
	sb.WriteString(state.Board.String())
	fmt.Fprintf(&sb, "\nScore: %d\n", state.Score)
	fmt.Fprintf(&sb, "Max tile: %d\n", state.MaxTile)
	fmt.Fprintf(&sb, "Moves: %d\n", state.TotalMoves)
	fmt.Fprintf(&sb, "Status: %s\n", state.Status)

	if state.GameOver {
		sb.WriteString("\nGAME OVER - call reset_game to play again\n")
	} else if len(state.PossibleMoves) > 0 {
		fmt.Fprintf(&sb, "Possible moves: %s\n", joinDirections(state.PossibleMoves))
	}
	if state.Message != "" {
		fmt.Fprintf(&sb, "\n%s\n", state.Message)
	}

	return sb.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var sb strings.Builder

	if result.Success {
		sb.WriteString("Move successful\n")
	} else {
		sb.WriteString("Move failed\n")
	}
	if result.Message != "" {
		fmt.Fprintf(&sb, "%s\n", result.Message)
	}

	if st := result.Step; st != nil {
		fmt.Fprintf(&sb, "Direction: %s, merges: %d, score: %d -> %d\n",
			st.Dir, st.Merges, st.ScoreBefore, st.ScoreAfter)
		for _, p := range st.Spawned {
			fmt.Fprintf(&sb, "New tile at (row %d, col %d)\n", p.Row, p.Col)
		}
	}

	if len(result.Events) > 0 {
		sb.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&sb, "- %s: %s\n", event.Type, event.Message)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(formatGameState(result.GameState))
	return sb.String()
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Bulk move for session %s: %d of %d moves executed\n",
		sessionID, result.MovesExecuted, result.RequestedMoves)
	if result.Truncated {
		fmt.Fprintf(&sb, "Request truncated to %d moves\n", result.Limit)
	}
	fmt.Fprintf(&sb, "Score: %d -> %d (%+d)\n", result.StartScore, result.EndScore, result.ScoreDelta)

	if len(result.Steps) > 0 {
		sb.WriteString("\nSteps:\n")
		for _, st := range result.Steps {
			sb.WriteString(formatStepLine(st))
		}
	}

	if result.StopReasonCode != "" {
		fmt.Fprintf(&sb, "\nStopped on move %d (%s): %s\n",
			result.StoppedOnMove, result.StopReasonCode, result.StoppedReason)
	}

	sb.WriteString("\n")
	sb.WriteString(formatGameState(result.GameState))
	return sb.String()
}

func formatStepLine(st service.StepInfo) string {
	line := fmt.Sprintf("  %2d. %-5s", st.Idx, st.Dir)
	if !st.Changed {
		return line + " no change\n"
	}
	line += fmt.Sprintf(" merges=%d score=%d->%d", st.Merges, st.ScoreBefore, st.ScoreAfter)
	if st.GameOver {
		line += " GAME OVER"
	}
	return line + "\n"
}

func joinDirections(dirs []engine.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
