package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, puzzle.WebSocketBufferSize),
	}
}

func testState(t *testing.T, board puzzle.Board) *puzzle.GameState {
	t.Helper()
	eng, err := puzzle.NewEngineWithBoard(nil, board)
	if err != nil {
		t.Fatalf("Failed to build engine: %v", err)
	}
	return eng.GetState()
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func TestNewHub(t *testing.T) {
	hub := NewHub(nil)

	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if hub.broadcast == nil || hub.register == nil || hub.unregister == nil {
		t.Error("Hub channels not initialized")
	}
	if cap(hub.broadcast) != puzzle.WebSocketBufferSize {
		t.Errorf("Expected broadcast buffer %d, got %d", puzzle.WebSocketBufferSize, cap(hub.broadcast))
	}
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub(nil)
	sessionID := "multi"

	client1 := newTestClient(hub, sessionID)
	client2 := newTestClient(hub, sessionID)

	hub.registerClient(client1)
	hub.registerClient(client2)
	if len(hub.sessions[sessionID]) != 2 {
		t.Fatalf("Expected 2 clients in session, got %d", len(hub.sessions[sessionID]))
	}

	hub.unregisterClient(client1)
	if len(hub.sessions[sessionID]) != 1 || !hub.sessions[sessionID][client2] {
		t.Error("client2 should still be registered")
	}
	if _, ok := <-client1.send; ok {
		t.Error("Unregistered client's send channel should be closed")
	}

	// Unregistering twice is harmless
	hub.unregisterClient(client1)

	hub.unregisterClient(client2)
	if _, exists := hub.sessions[sessionID]; exists {
		t.Error("Session should have been cleaned up after last client unregistered")
	}
}

func TestHubBroadcastMessage(t *testing.T) {
	hub := NewHub(nil)
	watcher := newTestClient(hub, "a1b2")
	other := newTestClient(hub, "c3d4")
	hub.registerClient(watcher)
	hub.registerClient(other)

	state := testState(t, puzzle.Board{1, 2, 0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 3})
	hub.broadcastMessage(&Message{SessionID: "a1b2", GameState: state, Event: EventStateUpdate})

	select {
	case data := <-watcher.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.Event != EventStateUpdate {
			t.Errorf("Expected event %s, got %s", EventStateUpdate, message.Event)
		}
		if message.GameState.Board != state.Board {
			t.Errorf("Board not transmitted: %s", message.GameState.Board)
		}
		if message.GameState.EmptyPos != (puzzle.Position{Row: 0, Col: 2}) {
			t.Errorf("Unexpected gap %+v", message.GameState.EmptyPos)
		}
	default:
		t.Fatal("Watcher received nothing")
	}

	select {
	case <-other.send:
		t.Error("Client of another session received the frame")
	default:
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(nil)
	slow := &Client{hub: hub, sessionID: "slow", send: make(chan []byte)}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{SessionID: "slow", Event: EventNewGame})

	if _, exists := hub.sessions["slow"]; exists {
		t.Error("Slow client should have been unregistered")
	}
}

func TestHubBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub(nil) // not running

	done := make(chan struct{})
	go func() {
		for i := 0; i < puzzle.WebSocketBufferSize+10; i++ {
			hub.BroadcastEvent("x", EventNewGame, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastEvent blocked on a full queue")
	}
}

func TestBroadcastToSessionMarksSolved(t *testing.T) {
	hub := NewHub(nil)
	hub.BroadcastToSession("s", testState(t, puzzle.SolvedBoard()))

	message := <-hub.broadcast
	if message.Event != EventSolved {
		t.Errorf("Expected %s, got %s", EventSolved, message.Event)
	}
}

func wsURL(server *httptest.Server, sessionID string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "?sessionId=" + sessionID
}

func TestWebSocketLifecycle(t *testing.T) {
	hub := startHub(t)
	initial := testState(t, puzzle.SolvedBoard())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("sessionId"), initial)
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "ws01"), nil)
	require.NoError(t, err)
	defer conn.Close()

	// The first frame is the current snapshot
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var first Message
	require.NoError(t, json.Unmarshal(data, &first))
	require.Equal(t, puzzle.SolvedBoard(), first.GameState.Board)

	require.Eventually(t, func() bool { return hub.ClientCount("ws01") == 1 },
		time.Second, 10*time.Millisecond)

	// A broadcast reaches the client
	next := testState(t, puzzle.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	hub.BroadcastToSession("ws01", next)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err = conn.ReadMessage()
	require.NoError(t, err)
	var update Message
	require.NoError(t, json.Unmarshal(data, &update))
	require.Equal(t, EventStateUpdate, update.Event)
	require.Equal(t, next.Board, update.GameState.Board)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount("ws01") == 0 },
		time.Second, 10*time.Millisecond)
}

func TestClientCountAfterStop(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	cancel()
	<-stopped
	if n := hub.ClientCount("any"); n != 0 {
		t.Errorf("Expected 0 after stop, got %d", n)
	}
}

func TestHubBroadcastToSessionQueuesACopy(t *testing.T) {
	hub := NewHub(nil)
	start := puzzle.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}
	eng, err := puzzle.NewEngineWithBoard(nil, start)
	require.NoError(t, err)

	hub.BroadcastToSession("a1b2", eng.GetState())
	require.True(t, eng.Move(puzzle.Left))

	queued := <-hub.broadcast
	require.Equal(t, EventStateUpdate, queued.Event)
	require.Equal(t, start, queued.GameState.Board)
	require.False(t, queued.GameState.Solved)
	require.NotSame(t, eng.GetState(), queued.GameState)
}
