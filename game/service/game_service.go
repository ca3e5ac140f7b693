package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

// Errors shared by the service and the stores behind it
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrConfigExists    = errors.New("configuration already exists")
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error)
	NewGame(ctx context.Context, sessionID string) (*puzzle.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*puzzle.GameState, error)
	GetBoard(ctx context.Context, sessionID string) (*BoardView, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*puzzle.GameConfig, error)
	// SaveConfig refuses to replace an existing config unless overwrite is set
	SaveConfig(ctx context.Context, configName string, config *puzzle.GameConfig, overwrite bool) error
}

// SessionManager defines session storage operations. Returned sessions are
// copies owned by the caller; only the Engine is shared.
type SessionManager interface {
	Create(id string, config *puzzle.GameConfig) (*Session, error)
	Touch(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
}

// ConfigManager handles puzzle configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*puzzle.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *puzzle.GameConfig
	SaveConfig(name string, config *puzzle.GameConfig, overwrite bool) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *puzzle.GameEngine
	Config         *puzzle.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
