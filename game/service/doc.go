// Package service provides the business logic layer for the fifteen puzzle.
//
// GameService is the interface the transports (REST, WebSocket, MCP) call.
// It owns no state of its own: sessions live behind a SessionManager and
// puzzle configurations behind a ConfigManager, and each session carries its
// own puzzle.GameEngine.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, logger)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, "left", false)
//
// A slide with no tile next to the gap is not an error: Move reports it with
// Success false and the board unchanged. Only a direction that cannot be
// parsed fails, with puzzle.ErrInvalidDirection.
package service
