package battleship

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type Difficulty uint8

const (
	GameDifficultyEasy Difficulty = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	GridSizeEasy   int = 6
	GridSizeNormal int = 8
	GridSizeHard   int = 10
)

func (d Difficulty) String() string {
	switch d {
	case GameDifficultyEasy:
		return "easy"
	case GameDifficultyNormal:
		return "normal"
	case GameDifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "easy":
		return GameDifficultyEasy, nil
	case "normal":
		return GameDifficultyNormal, nil
	case "hard":
		return GameDifficultyHard, nil
	default:
		return 0, cerr.ErrDifficulty(s)
	}
}

type Mode string

const (
	// human against the computer
	ModePvE Mode = "pve"
	// two humans sharing one device
	ModePvP Mode = "pvp"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModePvE:
		return ModePvE, nil
	case ModePvP:
		return ModePvP, nil
	default:
		return "", cerr.ErrMode(s)
	}
}

type Config struct {
	Size  int
	Ships []int
	Mode  Mode
}

func PresetConfig(difficulty Difficulty, mode Mode) (Config, error) {
	cfg := Config{Mode: mode}

	switch difficulty {
	case GameDifficultyEasy:
		cfg.Size = GridSizeEasy
		cfg.Ships = []int{3, 2, 2, 1, 1, 1, 1}
	case GameDifficultyNormal:
		cfg.Size = GridSizeNormal
		cfg.Ships = []int{3, 2, 2, 2, 1, 1, 1, 1}
	case GameDifficultyHard:
		cfg.Size = GridSizeHard
		cfg.Ships = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}
	default:
		return Config{}, cerr.ErrDifficulty(difficulty.String())
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Mode != ModePvE && c.Mode != ModePvP {
		return cerr.ErrMode(string(c.Mode))
	}
	if len(c.Ships) == 0 {
		return cerr.ErrInvalidShipLength(0)
	}
	return checkShipsFit(c.Size, c.Ships)
}

// WinCount is the number of sunk ships that ends the game.
func (c Config) WinCount() int {
	return len(c.Ships)
}

type Game struct {
	isFinished bool
	uuid       string
	cfg        Config
	seats      [2]*Seat
	winner     *Seat
	reporter   Reporter
	logger     *log.Logger
}

type GameOption func(*Game)

func WithReporter(r Reporter) GameOption {
	return func(g *Game) {
		g.reporter = r
	}
}

func WithGameLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame sets up a game where first moves first. In pve mode second is
// the computer and its board is hidden.
func NewGame(uuid string, cfg Config, first, second *Seat, opts ...GameOption) *Game {
	g := &Game{
		uuid:     uuid,
		cfg:      cfg,
		seats:    [2]*Seat{first, second},
		reporter: discardReporter{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if cfg.Mode == ModePvE {
		second.Board.SetHidden(true)
	}
	return g
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Config() Config {
	return g.cfg
}

// returns the seats in turn order.
func (g *Game) Seats() []*Seat {
	return []*Seat{g.seats[0], g.seats[1]}
}

func (g *Game) OtherSeat(s *Seat) *Seat {
	if g.seats[0] == s {
		return g.seats[1]
	}
	return g.seats[0]
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) Winner() *Seat {
	return g.winner
}

func (g *Game) IsWinner(defender *Board) bool {
	return defender.SunkCount() == g.cfg.WinCount()
}

// Run plays until one seat has sunk every ship of the other and returns
// the winner. A hit lets the attacker fire again; a miss or a sink passes
// the turn.
func (g *Game) Run(ctx context.Context) (*Seat, error) {
	logger := g.logger.With("game", g.uuid)
	logger.Info("game [Run] started", "mode", g.cfg.Mode, "size", g.cfg.Size, "ships", len(g.cfg.Ships))
	g.reporter.Report(NewEvent(CodeStartGame, g.cfg.Mode, g.seats[0], g.seats[1]))

	turn := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attacker, defender := g.seats[turn%2], g.seats[(turn+1)%2]
		g.reporter.Report(NewEvent(CodeTurn, g.cfg.Mode, attacker, defender))

		repeat, err := g.PlayShot(ctx, attacker, defender)
		if err != nil {
			logger.Error("game [Run] aborted", "seat", attacker.Name, "err", err)
			return nil, err
		}

		if g.IsWinner(defender.Board) {
			g.finish(attacker, defender)
			logger.Info("game [Run] finished", "winner", attacker.Name, "shots", attacker.Stats.Shots)
			g.reporter.Report(NewEvent(CodeEndGame, g.cfg.Mode, attacker, defender))
			return attacker, nil
		}

		if !repeat {
			turn++
			if g.cfg.Mode == ModePvP {
				g.reporter.Report(NewEvent(CodePassTurn, g.cfg.Mode, defender, attacker))
			}
		}
	}
}

// PlayShot asks attacker for cells until the defender's board accepts one
// and returns whether attacker fires again. Out-of-bounds and repeated
// cells are reported and asked again.
func (g *Game) PlayShot(ctx context.Context, attacker, defender *Seat) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		c, err := attacker.Chooser.NextTarget(defender.Board)
		if err != nil {
			return false, err
		}

		repeat, outcome, err := defender.Board.Shot(c)
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) || errors.Is(err, cerr.ErrAlreadyTargeted) {
				ev := NewEvent(CodeInvalidShot, g.cfg.Mode, attacker, defender)
				ev.AddError(c, err)
				g.reporter.Report(ev)
				continue
			}
			return false, err
		}

		attacker.Stats.record(outcome)
		attacker.Chooser.RecordOutcome(c, outcome)

		ev := NewEvent(CodeShot, g.cfg.Mode, attacker, defender)
		ev.AddShot(c, outcome, repeat)
		g.reporter.Report(ev)

		return repeat, nil
	}
}

func (g *Game) finish(winner, loser *Seat) {
	g.isFinished = true
	g.winner = winner
	winner.MatchStatus = PlayerMatchStatusWon
	loser.MatchStatus = PlayerMatchStatusLost
}
