package screen

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	gui "github.com/grupawp/warships-gui/v2"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Screen plays a 10x10 game against the computer on the warships-gui
// terminal board. The player's board is on the left, the computer's on the
// right, and shots are clicks on the right board.
type Screen struct {
	ctx    context.Context
	ui     *gui.GUI
	own    *gui.Board
	enemy  *gui.Board
	turn   *gui.Text
	result *gui.Text
	stats  [2]*gui.Text
	seats  []*mb.Seat
	logger *log.Logger
}

var _ mb.Reporter = (*Screen)(nil)

type Option func(*Screen)

func WithLogger(logger *log.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

func New(ctx context.Context, opts ...Option) *Screen {
	s := &Screen{
		ctx:    ctx,
		ui:     gui.NewGUI(false),
		own:    gui.NewBoard(1, 7, nil),
		enemy:  gui.NewBoard(50, 7, nil),
		turn:   gui.NewText(1, 1, "", nil),
		result: gui.NewText(1, 2, "", nil),
		stats:  [2]*gui.Text{gui.NewText(1, 4, "", nil), gui.NewText(50, 4, "", nil)},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ui.Draw(s.turn)
	s.ui.Draw(s.result)
	s.ui.Draw(s.stats[0])
	s.ui.Draw(s.stats[1])
	s.ui.Draw(s.own)
	s.ui.Draw(s.enemy)
	return s
}

// Start runs the terminal loop until ctx is done or the player quits.
func (s *Screen) Start() {
	s.ui.Start(s.ctx, nil)
}

func (s *Screen) Report(e mb.Event) {
	switch e.Code {
	case mb.CodeStartGame:
		s.seats = []*mb.Seat{e.Attacker, e.Defender}
		s.turn.SetText(fmt.Sprintf("Battleship, %s vs %s", e.Attacker.Name, e.Defender.Name))

	case mb.CodeTurn:
		s.turn.SetText(fmt.Sprintf("%s moves", e.Attacker.Name))

	case mb.CodeShot:
		s.result.SetText(fmt.Sprintf("%s fires at %s: %s", e.Attacker.Name, FormatCoord(e.Cell), e.Outcome))

	case mb.CodeInvalidShot:
		s.result.SetText(fmt.Sprintf("%s already fired at %s", e.Attacker.Name, FormatCoord(e.Cell)))

	case mb.CodeEndGame:
		s.turn.SetText(fmt.Sprintf("%s won! Press Ctrl+C to exit", e.Attacker.Name))
		s.logger.Info("screen [Report] game over", "winner", e.Attacker.Name)
	}

	s.refresh()
}

func (s *Screen) refresh() {
	if len(s.seats) != 2 {
		return
	}

	s.own.SetStates(States(s.seats[0].Board))
	s.enemy.SetStates(States(s.seats[1].Board))
	for i, seat := range s.seats {
		s.stats[i].SetText(fmt.Sprintf("%s: %d shots, %d hits, %d%%", seat.Name, seat.Stats.Shots, seat.Stats.Hits, seat.Stats.Accuracy()))
	}
}

// Player returns the MoveChooser fed by clicks on the computer's board.
func (s *Screen) Player() *Player {
	return &Player{screen: s}
}

type Player struct {
	screen *Screen
}

var _ mb.MoveChooser = (*Player)(nil)

func (p *Player) NextTarget(_ mb.TargetView) (mb.Cell, error) {
	for {
		coord := p.screen.enemy.Listen(p.screen.ctx)
		if err := p.screen.ctx.Err(); err != nil {
			return mb.Cell{}, err
		}

		c, err := ParseCoord(coord)
		if err != nil {
			p.screen.logger.Warn("screen [NextTarget] bad coordinate", "coord", coord, "err", err)
			continue
		}
		return c, nil
	}
}

func (p *Player) RecordOutcome(mb.Cell, mb.ShotOutcome) {}
