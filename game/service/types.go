package service

import (
	"time"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *puzzle.GameState  `json:"game_state"`
	GameConfig     *puzzle.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a single slide
type MoveResult struct {
	Success   bool              `json:"success"`
	GameState *puzzle.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Step      *StepInfo         `json:"step,omitempty"`
}

// Stop reason codes reported by BulkMove
const (
	StopBlockedEdge = "blocked_edge"
	StopSolved      = "solved"
)

// BulkMoveResult contains the result of multiple slides
type BulkMoveResult struct {
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *puzzle.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // blocked_edge|solved
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	StartEmpty    puzzle.Position `json:"start_empty"`
	EndEmpty      puzzle.Position `json:"end_empty"`
	StartDistance int             `json:"start_distance"`
	EndDistance   int             `json:"end_distance"`

	Steps []StepInfo `json:"steps,omitempty"`

	Solved        bool     `json:"solved"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// StepInfo is a compact record of one slide
type StepInfo struct {
	Idx     int             `json:"idx"`
	Dir     string          `json:"dir"`
	Tile    int             `json:"tile,omitempty"`
	From    puzzle.Position `json:"from"` // gap before
	To      puzzle.Position `json:"to"`   // gap after
	Success bool            `json:"success"`
	Solved  bool            `json:"solved,omitempty"`
}

// GameEvent represents something that happened during play
type GameEvent struct {
	Type      string          `json:"type"` // "move", "blocked", "solved", "new_game"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  puzzle.Position `json:"position"`
}

// BoardView is the renderer-facing snapshot of a session's board
type BoardView struct {
	SessionID string          `json:"session_id"`
	Board     puzzle.Board    `json:"board"`
	Rows      [][]int         `json:"rows"`
	Text      string          `json:"text"`
	EmptyPos  puzzle.Position `json:"empty_pos"`
	Solved    bool            `json:"solved"`
	Solvable  bool            `json:"solvable"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
	// CurrentOnly restricts the listing to the moves of the current game
	CurrentOnly bool `json:"current_only"`
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []puzzle.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename      string `json:"filename"`
	ConfigID      string `json:"config_id"` // The identifier to use for session creation
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	ShufflePolicy string `json:"shuffle"`
	PinnedStart   bool   `json:"pinned_start"`
}
