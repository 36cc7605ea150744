package battleship

type EventCode uint8

const (
	CodeStartGame EventCode = iota
	CodeTurn
	CodeShot

	// shot rejected by the board, the same seat is asked again
	CodeInvalidShot

	// pvp only: the device goes to the other player
	CodePassTurn
	CodeEndGame
)

func (c EventCode) String() string {
	switch c {
	case CodeStartGame:
		return "StartGame"
	case CodeTurn:
		return "Turn"
	case CodeShot:
		return "Shot"
	case CodeInvalidShot:
		return "InvalidShot"
	case CodePassTurn:
		return "PassTurn"
	case CodeEndGame:
		return "EndGame"
	default:
		return "Unknown"
	}
}

// Event is what the game loop tells its Reporter. Attacker is the seat
// whose action the event describes; Defender is the other seat.
type Event struct {
	Code     EventCode
	Mode     Mode
	Attacker *Seat
	Defender *Seat
	Cell     Cell
	Outcome  ShotOutcome
	Repeat   bool
	Error    error
}

func NewEvent(code EventCode, mode Mode, attacker, defender *Seat) Event {
	return Event{Code: code, Mode: mode, Attacker: attacker, Defender: defender}
}

func (e *Event) AddShot(c Cell, outcome ShotOutcome, repeat bool) {
	e.Cell = c
	e.Outcome = outcome
	e.Repeat = repeat
}

func (e *Event) AddError(c Cell, err error) {
	e.Cell = c
	e.Error = err
}

type Reporter interface {
	Report(e Event)
}

type ReporterFunc func(e Event)

func (f ReporterFunc) Report(e Event) {
	f(e)
}

type discardReporter struct{}

func (discardReporter) Report(Event) {}
