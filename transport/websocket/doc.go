// Package websocket pushes puzzle snapshots to renderers over WebSocket.
//
// A renderer connects to /ws?sessionId=abc1 and receives the session's
// current GameState as its first frame. After that it gets one JSON Message
// per change:
//
//	{"session_id":"abc1","event":"state_update","game_state":{...}}
//
// The event is "solved" when the pushed board is in order and "new_game"
// after a re-shuffle. Clients only watch: frames they send are read and
// discarded so that pings and close frames keep working.
//
// The Hub owns all client bookkeeping on its Run goroutine. Broadcasts are
// queued without blocking the caller; a full queue or a slow client drops
// frames rather than stalling a move.
//
//	hub := websocket.NewHub(logger)
//	go hub.Run(ctx)
//	hub.BroadcastToSession(id, state)
package websocket
