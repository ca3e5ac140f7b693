package puzzle

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Board() Board
	Reset() *GameState
	IsSolved() bool

	// Movement operations
	Move(direction Direction) bool
	CanMove(direction Direction) bool
	GetPossibleMoves() []Direction

	// Configuration
	GetConfig() *GameConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	src    Source
}

// NewEngine creates a new game engine with a shuffled board. A nil src uses
// the process-wide random source.
func NewEngine(config *GameConfig, src Source) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		src:    src,
		state:  InitGameStateFromConfig(config, src),
	}, nil
}

// NewEngineWithBoard creates a game engine starting from a known board
func NewEngineWithBoard(config *GameConfig, board Board) (*GameEngine, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  NewGameState(config, board),
	}, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state after checking the board invariants
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if err := state.Board.Validate(); err != nil {
		return err
	}
	state.refresh()
	e.state = state
	return nil
}

// Board returns a copy of the current board
func (e *GameEngine) Board() Board {
	return e.state.Board
}

// Reset starts a new game with a fresh shuffle
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = NewGameState(e.config, Shuffle(e.src, e.config.ShufflePolicy))

	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// IsSolved reports whether the board is in canonical order
func (e *GameEngine) IsSolved() bool {
	return e.state.Solved
}

// Move attempts to slide a tile in the specified direction. A move with no
// neighbouring tile is recorded as unsuccessful and leaves the board as is.
func (e *GameEngine) Move(direction Direction) bool {
	if _, ok := slides[direction]; !ok {
		return false
	}

	from := e.state.EmptyPos
	fromIdx := e.state.Board.EmptyIndex()
	success := e.state.ApplyMove(direction, e.config)

	tile := 0
	if success {
		tile = e.state.Board[fromIdx]
	}
	e.state.AddMoveToHistory(direction, from, e.state.EmptyPos, tile, success)

	return success
}

// CanMove checks if a tile can slide in the specified direction
func (e *GameEngine) CanMove(direction Direction) bool {
	return e.state.Board.CanMove(direction)
}

// GetPossibleMoves returns all directions that would change the board
func (e *GameEngine) GetPossibleMoves() []Direction {
	return e.state.Board.PossibleMoves()
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// BulkMove executes multiple moves in sequence, returning success status for each
func (e *GameEngine) BulkMove(moves []Direction) []bool {
	results := make([]bool, 0, len(moves))

	for _, direction := range moves {
		// Stop once the puzzle is solved
		if e.IsSolved() {
			break
		}

		results = append(results, e.Move(direction))
	}

	return results
}
