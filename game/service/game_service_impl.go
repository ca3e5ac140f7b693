package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	logger   *slog.Logger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance. A nil logger uses slog.Default().
func NewGameService(sessions SessionManager, configs ConfigManager, logger *slog.Logger) GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		logger:   logger.With("component", "service"),
	}
}

// getConfigID maps a display name back to the config_id used for session creation
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	if configID == "" {
		configID = s.getConfigID(sess.Config.Name)
	}
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState().Clone(),
		GameConfig:     sess.Config,
	}
}

func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Touch(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
		}
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// CreateSession creates a new game session with a freshly shuffled board
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *puzzle.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				var configIDs []string
				if available, listErr := s.configs.ListConfigs(); listErr == nil {
					for _, cfg := range available {
						configIDs = append(configIDs, cfg.ConfigID)
					}
				}
				return nil, fmt.Errorf("config '%s' not found, available configs: %v: %w", configName, configIDs, ErrConfigNotFound)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate the ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("session created",
		"session", sess.ID,
		"config", config.Name,
		"board", sess.Engine.Board().String(),
		"solvable", sess.Engine.GetState().Solvable)

	return s.sessionInfo(sess, configName), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess, ""), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, ""))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	s.logger.Info("session deleted", "session", sessionID)
	return nil
}

// Move slides one tile for a session. A slide with no tile next to the gap is
// reported with Success false, never as an error.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	dir, err := puzzle.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	events := []GameEvent{}
	if reset {
		state := sess.Engine.Reset()
		events = append(events, newGameEvent(state))
	}

	step := s.applyMove(sess, dir, 1)
	state := sess.Engine.GetState()
	events = append(events, stepEvents(step, state)...)

	return &MoveResult{
		Success:   step.Success,
		GameState: state.Clone(),
		Message:   state.Message,
		Events:    events,
		Step:      &step,
	}, nil
}

// BulkMove executes several slides in order, stopping at the first rejected
// slide or once the puzzle is solved
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	// Reject the whole batch before touching the board
	dirs := make([]puzzle.Direction, 0, len(moves))
	for i, m := range moves {
		d, err := puzzle.ParseDirection(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs = append(dirs, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
	}

	if reset {
		state := sess.Engine.Reset()
		result.Events = append(result.Events, newGameEvent(state))
	}

	start := sess.Engine.GetState()
	result.StartEmpty = start.EmptyPos
	result.StartDistance = start.Distance

	if len(dirs) > puzzle.MaxBulkMoves {
		result.Truncated = true
		result.Limit = puzzle.MaxBulkMoves
		dirs = dirs[:puzzle.MaxBulkMoves]
	}

	for i, dir := range dirs {
		if sess.Engine.IsSolved() {
			result.StoppedReason = "puzzle already solved"
			result.StopReasonCode = StopSolved
			result.StoppedOnMove = i + 1
			break
		}

		step := s.applyMove(sess, dir, i+1)
		result.Steps = append(result.Steps, step)
		result.Events = append(result.Events, stepEvents(step, sess.Engine.GetState())...)

		if !step.Success {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d blocked: no tile can slide %s", i+1, dir)
			result.StopReasonCode = StopBlockedEdge
			result.StoppedOnMove = i + 1
			break
		}
		result.MovesExecuted++
	}

	end := sess.Engine.GetState()
	result.GameState = end.Clone()
	result.EndEmpty = end.EmptyPos
	result.EndDistance = end.Distance
	result.Solved = end.Solved
	result.Message = end.Message
	for _, d := range sess.Engine.GetPossibleMoves() {
		result.PossibleMoves = append(result.PossibleMoves, string(d))
	}

	s.logger.Debug("bulk move",
		"session", sessionID,
		"requested", result.RequestedMoves,
		"applied", result.MovesExecuted,
		"stop", result.StopReasonCode)

	return result, nil
}

// applyMove runs one slide and logs the board it produced
func (s *gameServiceImpl) applyMove(sess *Session, dir puzzle.Direction, idx int) StepInfo {
	from := sess.Engine.GetState().EmptyPos
	applied := sess.Engine.Move(dir)
	state := sess.Engine.GetState()

	step := StepInfo{
		Idx:     idx,
		Dir:     string(dir),
		From:    from,
		To:      state.EmptyPos,
		Success: applied,
		Solved:  state.Solved,
	}
	if last := sess.Engine.GetLastMove(); last != nil {
		step.Tile = last.Tile
	}

	s.logger.Debug("move",
		"session", sess.ID,
		"dir", dir,
		"applied", applied,
		"board", state.Board.String())

	return step
}

// NewGame re-initializes a session's board with a fresh shuffle
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*puzzle.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.Reset()
	s.logger.Info("new game",
		"session", sessionID,
		"game", state.GameID,
		"board", state.Board.String(),
		"solvable", state.Solvable)
	return state.Clone(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*puzzle.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState().Clone(), nil
}

// GetBoard returns a snapshot of the board for renderers
func (s *gameServiceImpl) GetBoard(ctx context.Context, sessionID string) (*BoardView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	board := sess.Engine.Board()
	return &BoardView{
		SessionID: sess.ID,
		Board:     board,
		Rows:      board.Rows(),
		Text:      board.String(),
		EmptyPos:  board.EmptyPosition(),
		Solved:    board.IsSolved(),
		Solvable:  board.IsSolvable(),
	}, nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Engine.GetMoveHistory()
	if opts.CurrentOnly {
		history = sess.Engine.GetState().CurrentMoves
	}
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []puzzle.MoveHistoryEntry{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else if start < total {
		moves = append(moves, history[start:end]...)
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*puzzle.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *puzzle.GameConfig, overwrite bool) error {
	if err := s.configs.SaveConfig(configName, config, overwrite); err != nil {
		return err
	}
	s.logger.Info("config saved", "config", configName, "overwrite", overwrite)
	return nil
}

func newGameEvent(state *puzzle.GameState) GameEvent {
	return GameEvent{
		Type:      "new_game",
		Message:   fmt.Sprintf("New game %s", state.GameID),
		Timestamp: time.Now(),
		Position:  state.EmptyPos,
	}
}

// stepEvents turns one slide into the events reported to callers
func stepEvents(step StepInfo, state *puzzle.GameState) []GameEvent {
	now := time.Now()
	if !step.Success {
		return []GameEvent{{
			Type:      "blocked",
			Message:   fmt.Sprintf("No tile can slide %s", step.Dir),
			Timestamp: now,
			Position:  step.From,
		}}
	}

	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("Tile %d slid %s", step.Tile, step.Dir),
		Timestamp: now,
		Position:  step.To,
	}}
	if step.Solved {
		events = append(events, GameEvent{
			Type:      "solved",
			Message:   state.Message,
			Timestamp: now,
			Position:  step.To,
		})
	}
	return events
}
