// Package api provides the HTTP REST API for the fifteen puzzle.
//
// Endpoints:
//
// Sessions:
//   - POST   /api/sessions                 create a session ({"config_id": "classic"}, body optional)
//   - GET    /api/sessions                 list sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET    /api/sessions/unified         boards of several sessions (?sessionIds=a,b or ?configName=x)
//   - GET    /api/sessions/{id}            session info with its game state
//   - DELETE /api/sessions/{id}            delete a session
//
// Play:
//   - GET  /api/sessions/{id}/state        full game state
//   - GET  /api/sessions/{id}/board        board snapshot (?format=text for a 4x4 grid)
//   - POST /api/sessions/{id}/move         {"direction": "left|right|up|down", "reset": false}
//   - POST /api/sessions/{id}/bulk-move    {"moves": ["left", "down"], "reset": false}
//   - POST /api/sessions/{id}/new-game     shuffle a new board (alias: /reset)
//   - GET  /api/sessions/{id}/history      ?page=&limit=&order=asc|desc&scope=current
//
// Configs:
//   - GET  /api/configs                    list puzzle configs
//   - GET  /api/configs/{name}             one config
//   - POST /api/configs                    save a config
//
// Other:
//   - GET /api/health                      liveness and session count
//   - GET /ws?session={id}                 WebSocket stream of board snapshots
//
// A move toward an edge with no tile to slide answers 200 with
// "success": false and the board unchanged. An unknown direction answers
// 400, a missing session or config 404. Errors are JSON:
//
//	{"error": "session abcd: session not found"}
//
// Every successful move, bulk move and new game is pushed to the session's
// WebSocket clients.
package api
