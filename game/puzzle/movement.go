package puzzle

import (
	"fmt"
	"time"
)

// ApplyMove slides a tile in the given direction and updates the message.
// Rejected moves leave the board as it was.
func (gs *GameState) ApplyMove(direction Direction, config *GameConfig) bool {
	from := gs.Board.EmptyIndex()
	if !gs.Board.Move(direction) {
		gs.Message = config.Messages.Blocked
		if gs.Message == "" {
			gs.Message = fmt.Sprintf("Can't move %s: the gap is at (%d,%d)", direction, gs.EmptyPos.Row, gs.EmptyPos.Col)
		}
		return false
	}

	tile := gs.Board[from]
	gs.refresh()

	switch {
	case gs.Solved:
		gs.Message = fmt.Sprintf(config.Messages.Solved, gs.appliedMoves()+1)
	case config.Messages.Moved != "":
		gs.Message = fmt.Sprintf(config.Messages.Moved, tile)
	default:
		gs.Message = fmt.Sprintf("Moved tile %d %s", tile, direction)
	}
	return true
}

// appliedMoves counts the successful moves of the current game
func (gs *GameState) appliedMoves() int {
	n := 0
	for _, m := range gs.CurrentMoves {
		if m.Success {
			n++
		}
	}
	return n
}

// AddMoveToHistory adds a move to the game's move history
func (gs *GameState) AddMoveToHistory(action Direction, from, to Position, tile int, success bool) {
	entry := MoveHistoryEntry{
		Action:     action,
		EmptyFrom:  from,
		EmptyTo:    to,
		Tile:       tile,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: gs.TotalMoves + 1,
	}
	// Append to cumulative history (never cleared by reset) and increment total
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++

	gs.CurrentMoves = append(gs.CurrentMoves, entry)
	gs.CurrentMovesCount++
}
