package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type GameManager interface {
	CreateGame(cfg Config, first, second *Seat, opts ...GameOption) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	Count() int
}

// BattleshipGameManager keeps the games of one process. Each game is
// still driven by a single goroutine; only the registry is shared.
type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(cfg Config, first, second *Seat, opts ...GameOption) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gameUuid := uuid.NewString()[:6]
	game := NewGame(gameUuid, cfg, first, second, opts...)

	bgm.mu.Lock()
	bgm.games[gameUuid] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameUuidNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) Count() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
