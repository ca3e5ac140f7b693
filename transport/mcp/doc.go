// Package mcp exposes the fifteen puzzle to AI agents over the Model Context
// Protocol.
//
// The Client registers one MCP tool per REST operation and forwards every
// call to the HTTP API, so an agent and a WebSocket renderer always see the
// same sessions:
//   - create_session, list_sessions, get_session
//   - game_state, locate_tile
//   - move, bulk_move, new_game
//   - move_history, list_configs, game_instructions
//
// Tool results are plain text with the board drawn as a 4x4 grid.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
