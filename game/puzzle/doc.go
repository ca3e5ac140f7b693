// Package puzzle provides the core game logic for the 15-puzzle.
//
// The puzzle package implements:
//   - The 4x4 Board, stored row-major with 0 as the empty slot
//   - The rejection-sampling shuffle and an optional parity-corrected variant
//   - The four directional moves and their legality checks
//   - Solved and solvable checks plus distance aids
//   - Game state, move history and configuration validation
//
// Core Types:
//
// Board is a value type; copying it yields an independent snapshot that a
// renderer can hold without seeing later moves. GameEngine owns one GameState
// and is the only writer of its board.
//
// Usage:
//
//	eng, err := puzzle.NewEngine(puzzle.DefaultGameConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	applied := eng.Move(puzzle.Left)
//	board := eng.Board()
//
// Moves:
//
// Left and Right are named for the tile that slides: Left pulls the tile to
// the right of the gap into it. Up and Down are named for the path of the gap:
// Up swaps the gap with the tile above it. A move with no tile on the
// required side is a silent no-op and Move reports false.
//
// Solvability:
//
// The uniform shuffle draws every permutation with equal probability, so
// about half of the boards it produces cannot be solved by legal slides.
// ShuffleSolvable removes that half.
package puzzle
