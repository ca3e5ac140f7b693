package puzzle

// Direction names a slide requested by the player
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// ShufflePolicy selects how a new board is drawn
type ShufflePolicy string

const (
	// ShuffleUniform places 1..15 by rejection sampling with no parity
	// correction, so about half of the boards cannot be solved.
	ShuffleUniform ShufflePolicy = "uniform"
	// ShuffleSolvable draws like ShuffleUniform and then swaps two numbered
	// tiles when the draw has the wrong parity.
	ShuffleSolvable ShufflePolicy = "solvable"
)

const (
	// Board geometry
	Size  = 4
	Cells = Size * Size
	Empty = 0

	// Validation constants
	MaxBulkMoves        = 50
	WebSocketBufferSize = 256
)

// Directions lists every direction in the order moves are probed
var Directions = []Direction{Up, Down, Left, Right}

// Position is a row/column pair on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameConfig represents a puzzle configuration loaded from JSON
type GameConfig struct {
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ShufflePolicy ShufflePolicy `json:"shuffle"`
	// StartBoard pins the first board of every game when set; Reset still shuffles.
	StartBoard string `json:"start_board,omitempty"`
	Messages   struct {
		Welcome string `json:"welcome"`
		Moved   string `json:"moved"`
		Blocked string `json:"blocked"`
		Solved  string `json:"solved"`
	} `json:"messages"`
}

// GameState represents the complete state of one game
type GameState struct {
	GameID     string   `json:"game_id"`
	Board      Board    `json:"board"`
	EmptyPos   Position `json:"empty_pos"`
	Solved     bool     `json:"solved"`
	Solvable   bool     `json:"solvable"`
	Message    string   `json:"message"`
	ConfigName string   `json:"config_name"`

	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves of the current game. It mirrors
	// MoveHistory entries but is cleared on reset while MoveHistory stays cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`

	// Computed helper views (not required for core game logic)
	Rows           [][]int `json:"rows,omitempty"`
	Distance       int     `json:"distance"`
	MisplacedTiles int     `json:"misplaced_tiles"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Action     Direction `json:"action"`
	EmptyFrom  Position  `json:"empty_from"`
	EmptyTo    Position  `json:"empty_to"`
	Tile       int       `json:"tile,omitempty"`
	Timestamp  int64     `json:"timestamp"`
	Success    bool      `json:"success"`
	MoveNumber int       `json:"move_number"`
}
