// Package config provides configuration management for the 15-puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - A display name and description
//   - The shuffle policy ("uniform" or "solvable")
//   - An optional pinned start board for the first game of a session
//   - Message templates for moves, blocked moves and a solved board
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("solvable")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// When the directory has no "classic" config and no other valid file, the
// manager falls back to puzzle.DefaultGameConfig.
package config
