package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/fifteen/api"
	"github.com/wricardo/mcp-training/fifteen/game/config"
	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
	"github.com/wricardo/mcp-training/fifteen/game/service"
	"github.com/wricardo/mcp-training/fifteen/game/session"
)

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.GetMCPServer())
}

func TestClient_apiCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "healthy", "sessions": 2})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]any
	require.NoError(t, client.apiCall(context.Background(), "GET", "/api/health", nil, &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestClient_apiCall_Errors(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")
		assert.Error(t, client.apiCall(context.Background(), "GET", "/api", nil, nil))
	})

	t.Run("plain status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Internal Server Error"))
		}))
		defer server.Close()

		err := NewClient(server.URL).apiCall(context.Background(), "GET", "/api", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API error: 500")
	})

	t.Run("json error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "session zz: session not found"})
		}))
		defer server.Close()

		err := NewClient(server.URL).apiCall(context.Background(), "GET", "/api/sessions/zz", nil, nil)
		require.Error(t, err)
		assert.Equal(t, "session zz: session not found", err.Error())
	})
}

func TestClient_createSession(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.SessionInfo{
			ID:         "c0ff",
			ConfigName: "solvable",
			GameState:  puzzle.NewGameState(nil, puzzle.SolvedBoard()),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.handleCreateSession(context.Background(), callTool("create_session", map[string]any{"config_id": "solvable"}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "c0ff")
	assert.Equal(t, "solvable", gotBody["config_id"])
}

func TestClient_bulkMoveRejectsEmpty(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	result, err := client.handleBulkMove(context.Background(), callTool("bulk_move", map[string]any{
		"session_id": "ab12",
		"moves":      []any{},
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestFormatGrid(t *testing.T) {
	want := " 1  2  3  4\n 5  6  7  8\n 9 10 11 12\n13 14 15  .\n"
	assert.Equal(t, want, formatGrid(puzzle.SolvedBoard()))
}

func TestFormatGameState(t *testing.T) {
	board := puzzle.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}
	state := puzzle.NewGameState(nil, board)

	result := formatGameState(state)

	for _, field := range []string{
		"13 14  . 15",
		"Gap: (row 3, col 2)",
		"Distance: 1",
		"Solvable: yes",
		"Possible moves: up, left, right",
	} {
		assert.Contains(t, result, field)
	}
	assert.NotContains(t, result, "SOLVED")
}

func TestFormatGameState_Solved(t *testing.T) {
	result := formatGameState(puzzle.NewGameState(nil, puzzle.SolvedBoard()))
	assert.Contains(t, result, "🎉 SOLVED!")
}

func TestFormatGameState_Unsolvable(t *testing.T) {
	board := puzzle.Board{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}
	result := formatGameState(puzzle.NewGameState(nil, board))
	assert.Contains(t, result, "Solvable: no")
}

func TestFormatMoveResult(t *testing.T) {
	state := puzzle.NewGameState(nil, puzzle.SolvedBoard())

	ok := formatMoveResult(&service.MoveResult{
		Success:   true,
		GameState: state,
		Step: &service.StepInfo{
			Idx: 1, Dir: "left", Tile: 15, Success: true,
			From: puzzle.Position{Row: 3, Col: 2},
			To:   puzzle.Position{Row: 3, Col: 3},
		},
	})
	assert.Contains(t, ok, "✓ Move successful")
	assert.Contains(t, ok, "tile=15 gap (3,2)→(3,3)")

	blocked := formatMoveResult(&service.MoveResult{
		Success:   false,
		GameState: state,
		Step:      &service.StepInfo{Idx: 1, Dir: "left", From: puzzle.Position{Row: 3, Col: 3}, To: puzzle.Position{Row: 3, Col: 3}},
	})
	assert.Contains(t, blocked, "✗ Move blocked")
	assert.Contains(t, blocked, "left has no tile to slide")
}

func TestFormatBulkMoveResult(t *testing.T) {
	result := formatBulkMoveResult("ab12", &service.BulkMoveResult{
		RequestedMoves: 60,
		MovesExecuted:  1,
		Truncated:      true,
		Limit:          puzzle.MaxBulkMoves,
		StopReasonCode: service.StopBlockedEdge,
		StoppedReason:  "no tile to slide up",
		StoppedOnMove:  2,
		Steps: []service.StepInfo{
			{Idx: 1, Dir: "left", Tile: 2, Success: true},
			{Idx: 2, Dir: "up"},
		},
		GameState: puzzle.NewGameState(nil, puzzle.SolvedBoard()),
	})

	assert.Contains(t, result, "Request truncated to 50 moves")
	assert.Contains(t, result, "Executed 1/50 moves")
	assert.Contains(t, result, "Stopped on move 2: no tile to slide up")
	assert.Contains(t, result, "1. left ✓ tile=2")
	assert.Contains(t, result, "2. up ✗")
}

func TestDescribeTile(t *testing.T) {
	board := puzzle.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}

	assert.Contains(t, describeTile(board, 15), "row 3, col 3 (0-based)")
	assert.Contains(t, describeTile(board, 15), "1 step(s) from home")
	assert.Contains(t, describeTile(board, 1), "in place")
	assert.Contains(t, describeTile(board, 0), "Gap is at row 3, col 2")
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")

	result, err := client.handleGameInstructions(context.Background(), callTool("game_instructions", nil))
	require.NoError(t, err)

	text := resultText(t, result)
	for _, content := range []string{
		"Fifteen Puzzle - Complete Instructions",
		"OBJECTIVE:",
		"MOVEMENT:",
		"SOLVABILITY:",
		"13 14 15  .",
	} {
		assert.Contains(t, text, content)
	}
}

// newAPIStack runs the real REST API over the repository's configs
func newAPIStack(t *testing.T) *httptest.Server {
	t.Helper()
	configs, err := config.NewManager("../../configs")
	require.NoError(t, err)

	svc := service.NewGameService(session.NewManager(), configs, nil)
	server := httptest.NewServer(api.NewServer(svc, nil, nil))
	t.Cleanup(server.Close)
	return server
}

func TestClient_PlayAgainstAPI(t *testing.T) {
	server := newAPIStack(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	created, err := client.handleCreateSession(ctx, callTool("create_session", map[string]any{"config_id": "warmup"}))
	require.NoError(t, err)
	text := resultText(t, created)
	require.False(t, created.IsError, text)

	line := strings.SplitN(text, "\n", 2)[0]
	sessionID := strings.TrimPrefix(line, "Created session: ")
	require.NotEmpty(t, sessionID)

	// The warmup gap sits in the right column, so "left" has nothing to slide
	blocked, err := client.handleMove(ctx, callTool("move", map[string]any{"session_id": sessionID, "direction": "left"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, blocked), "✗ Move blocked")

	solved, err := client.handleMove(ctx, callTool("move", map[string]any{"session_id": sessionID, "direction": "down"}))
	require.NoError(t, err)
	solvedText := resultText(t, solved)
	assert.Contains(t, solvedText, "✓ Move successful")
	assert.Contains(t, solvedText, "🎉 SOLVED!")

	history, err := client.handleMoveHistory(ctx, callTool("move_history", map[string]any{"session_id": sessionID, "current_only": true}))
	require.NoError(t, err)
	historyText := resultText(t, history)
	assert.Contains(t, historyText, "left ✗")
	assert.Contains(t, historyText, "down ✓ tile=12")

	invalid, err := client.handleMove(ctx, callTool("move", map[string]any{"session_id": sessionID, "direction": "north"}))
	require.NoError(t, err)
	assert.True(t, invalid.IsError)

	missing, err := client.handleGameState(ctx, callTool("game_state", map[string]any{"session_id": "nope"}))
	require.NoError(t, err)
	assert.True(t, missing.IsError)
	assert.Contains(t, resultText(t, missing), "session not found")

	configs, err := client.handleListConfigs(ctx, callTool("list_configs", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, configs), "(id: warmup)")
}
