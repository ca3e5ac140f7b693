package puzzle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateGameConfig validates a game configuration for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	switch config.ShufflePolicy {
	case ShuffleUniform, ShuffleSolvable:
	case "":
		return fmt.Errorf("config validation: shuffle is required (%q or %q)", ShuffleUniform, ShuffleSolvable)
	default:
		return fmt.Errorf("config validation: unknown shuffle policy %q", config.ShufflePolicy)
	}

	if config.StartBoard != "" {
		if _, err := ParseBoard(config.StartBoard); err != nil {
			return fmt.Errorf("config validation: start_board: %w", err)
		}
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}

	// Validate format strings
	if config.Messages.Moved != "" && !singleIntVerb(config.Messages.Moved) {
		return fmt.Errorf("config validation: messages.moved must contain exactly one %%d verb for the tile")
	}
	if !singleIntVerb(config.Messages.Solved) {
		return fmt.Errorf("config validation: messages.solved must contain exactly one %%d verb for the move count")
	}

	return nil
}

// singleIntVerb reports whether format holds exactly one verb and that verb
// is %d, optionally with flags or a width. %% is literal text.
func singleIntVerb(format string) bool {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) || format[i] != 'd' {
			return false
		}
		verbs++
	}
	return verbs == 1
}

// DefaultGameConfig returns the built-in configuration, which keeps the
// original uniform shuffle.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:          "classic",
		Description:   "Classic 15-puzzle with a uniform shuffle",
		ShufflePolicy: ShuffleUniform,
	}
	config.Messages.Welcome = "Slide the tiles into order. The gap is 0."
	config.Messages.Moved = "Moved tile %d"
	config.Messages.Blocked = "No tile can slide that way"
	config.Messages.Solved = "Solved in %d moves!"
	return config
}

// InitGameStateFromConfig creates a new game with a freshly shuffled board.
// A config StartBoard, when set, replaces the shuffle.
func InitGameStateFromConfig(config *GameConfig, src Source) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}

	board := Shuffle(src, config.ShufflePolicy)
	if config.StartBoard != "" {
		if pinned, err := ParseBoard(config.StartBoard); err == nil {
			board = pinned
		}
	}

	return NewGameState(config, board)
}

// NewGameState wraps an existing board in a fresh game state
func NewGameState(config *GameConfig, board Board) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}
	state := &GameState{
		GameID:            uuid.NewString(),
		Board:             board,
		Message:           config.Messages.Welcome,
		ConfigName:        config.Name,
		MoveHistory:       []MoveHistoryEntry{},
		CurrentMoves:      []MoveHistoryEntry{},
		CurrentMovesCount: 0,
	}
	state.refresh()
	return state
}

// refresh recomputes the derived fields after the board changes
func (gs *GameState) refresh() {
	gs.EmptyPos = gs.Board.EmptyPosition()
	gs.Solved = gs.Board.IsSolved()
	gs.Solvable = gs.Board.IsSolvable()
	gs.Rows = gs.Board.Rows()
	gs.Distance = gs.Board.ManhattanDistance()
	gs.MisplacedTiles = gs.Board.MisplacedTiles()
}

// Clone returns a deep copy of gs that shares no slices with it
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	c := *gs
	c.MoveHistory = cloneEntries(gs.MoveHistory)
	c.CurrentMoves = cloneEntries(gs.CurrentMoves)
	if gs.Rows != nil {
		c.Rows = make([][]int, len(gs.Rows))
		for i, row := range gs.Rows {
			c.Rows[i] = append([]int(nil), row...)
		}
	}
	return &c
}

func cloneEntries(entries []MoveHistoryEntry) []MoveHistoryEntry {
	if entries == nil {
		return nil
	}
	out := make([]MoveHistoryEntry, len(entries))
	copy(out, entries)
	return out
}
