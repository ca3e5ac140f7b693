package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
	"github.com/wricardo/mcp-training/fifteen/game/service"
)

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName, session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

// formatGrid draws the board as four right-aligned rows with "." for the gap
func formatGrid(board puzzle.Board) string {
	var b strings.Builder
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			v := board[r*puzzle.Size+c]
			if v == puzzle.Empty {
				b.WriteString(" .")
			} else {
				fmt.Fprintf(&b, "%2d", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatGameState(state *puzzle.GameState) string {
	if state == nil {
		return "Game state unavailable"
	}

	var b strings.Builder
	b.WriteString(formatGrid(state.Board))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Gap: (row %d, col %d) | Moves: %d | Distance: %d | Misplaced: %d\n",
		state.EmptyPos.Row, state.EmptyPos.Col, state.CurrentMovesCount, state.Distance, state.MisplacedTiles)

	solvable := "yes"
	if !state.Solvable {
		solvable = "no (start a new game)"
	}
	fmt.Fprintf(&b, "Solvable: %s\n", solvable)
	fmt.Fprintf(&b, "Possible moves: %s\n", strings.Join(directionNames(state.Board.PossibleMoves()), ", "))

	if state.Solved {
		b.WriteString("\n🎉 SOLVED!\n")
	}
	if state.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", state.Message)
	}
	return b.String()
}

func directionNames(dirs []puzzle.Direction) []string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return names
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	if result.Success {
		b.WriteString("✓ Move successful\n")
	} else {
		b.WriteString("✗ Move blocked\n")
	}

	if step := result.Step; step != nil {
		if step.Success {
			fmt.Fprintf(&b, "Step: %s tile=%d gap (%d,%d)→(%d,%d)\n",
				step.Dir, step.Tile, step.From.Row, step.From.Col, step.To.Row, step.To.Col)
		} else {
			fmt.Fprintf(&b, "Step: %s has no tile to slide with the gap at (%d,%d)\n",
				step.Dir, step.From.Row, step.From.Col)
		}
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
		}
	}
	b.WriteByte('\n')
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s\n", sessionID)

	requested := result.RequestedMoves
	if result.Truncated {
		fmt.Fprintf(&b, "Request truncated to %d moves\n", result.Limit)
		requested = result.Limit
	}
	fmt.Fprintf(&b, "Executed %d/%d moves\n", result.MovesExecuted, requested)

	switch result.StopReasonCode {
	case service.StopBlockedEdge:
		fmt.Fprintf(&b, "Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason)
	case service.StopSolved:
		fmt.Fprintf(&b, "Stopped on move %d: puzzle solved\n", result.StoppedOnMove)
	}

	fmt.Fprintf(&b, "Gap: (%d,%d) → (%d,%d) | Distance: %d → %d\n",
		result.StartEmpty.Row, result.StartEmpty.Col, result.EndEmpty.Row, result.EndEmpty.Col,
		result.StartDistance, result.EndDistance)

	if len(result.Steps) > 0 {
		b.WriteString("Steps:\n")
		for _, step := range result.Steps {
			mark := "✓"
			if !step.Success {
				mark = "✗"
			}
			fmt.Fprintf(&b, "%d. %s %s", step.Idx, step.Dir, mark)
			if step.Success {
				fmt.Fprintf(&b, " tile=%d", step.Tile)
			}
			b.WriteByte('\n')
		}
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
		}
	}

	b.WriteByte('\n')
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d), total %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	if len(history.Moves) == 0 {
		b.WriteString("(no moves)\n")
		return b.String()
	}

	for _, move := range history.Moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		fmt.Fprintf(&b, "%d. %s %s", move.MoveNumber, move.Action, status)
		if move.Success {
			fmt.Fprintf(&b, " tile=%d", move.Tile)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
