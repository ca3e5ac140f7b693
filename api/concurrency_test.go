package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/wricardo/mcp-training/fifteen/game/config"
	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
	"github.com/wricardo/mcp-training/fifteen/game/service"
	"github.com/wricardo/mcp-training/fifteen/game/session"
	"github.com/wricardo/mcp-training/fifteen/transport/websocket"
)

func setupLiveServer(t *testing.T) *Server {
	t.Helper()
	configs, err := config.NewManager("../configs")
	if err != nil {
		t.Fatalf("Failed to load configs: %v", err)
	}
	svc := service.NewGameService(session.NewManager(), configs, nil)

	hub := websocket.NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return NewServer(svc, hub, nil)
}

func TestConcurrentRequestsOnOneSession(t *testing.T) {
	server := setupLiveServer(t)

	w := serve(server, makeRequest("POST", "/api/sessions", map[string]string{"config_id": "solvable"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created service.SessionInfo
	parseResponse(t, w, &created)
	base := "/api/sessions/" + created.ID

	dirs := []string{"up", "left", "down", "right"}
	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(2)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				var w *httptest.ResponseRecorder
				if i%4 == 0 {
					w = serve(server, makeRequest("POST", base+"/bulk-move", map[string]any{
						"moves": []string{dirs[worker], dirs[(worker+2)%4]},
					}))
				} else {
					w = serve(server, makeRequest("POST", base+"/move", map[string]string{
						"direction": dirs[(worker+i)%4],
					}))
				}
				if w.Code != http.StatusOK {
					t.Errorf("Move request failed with %d: %s", w.Code, w.Body.String())
					return
				}
			}
		}(worker)
		go func() {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				for _, path := range []string{base, base + "/state", "/api/sessions", "/api/sessions/unified"} {
					if w := serve(server, makeRequest("GET", path, nil)); w.Code != http.StatusOK {
						t.Errorf("GET %s failed with %d", path, w.Code)
						return
					}
				}

				var state puzzle.GameState
				w := serve(server, makeRequest("GET", base+"/state", nil))
				if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
					t.Errorf("Bad state body: %v", err)
					return
				}
				if err := state.Board.Validate(); err != nil {
					t.Errorf("Inconsistent board: %v", err)
					return
				}
				if state.EmptyPos != state.Board.EmptyPosition() {
					t.Errorf("Gap %+v does not match board %s", state.EmptyPos, state.Board)
					return
				}
			}
		}()
	}
	wg.Wait()
}
