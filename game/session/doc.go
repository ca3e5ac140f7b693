// Package session keeps the in-memory set of puzzle sessions.
//
// Each session owns one puzzle.GameEngine, so games never share a board.
// IDs are 4 hex characters drawn from crypto/rand and looked up
// case-insensitively. The Manager is safe for concurrent use.
//
// Sessions do not survive a restart. Idle sessions are dropped by
// CleanupExpiredSessions, which the server runs on a ticker.
//
//	manager := session.NewManager()
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sess.Engine.Move(puzzle.Left)
package session
