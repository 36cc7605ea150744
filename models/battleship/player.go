package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Seat is one side of a game: the board it defends and the chooser that
// decides where it fires on the opponent's board.
type Seat struct {
	Name        string
	Board       *Board
	Chooser     MoveChooser
	MatchStatus int
	Stats       Stats
}

func NewSeat(name string, board *Board, chooser MoveChooser) *Seat {
	return &Seat{
		Name:        name,
		Board:       board,
		Chooser:     chooser,
		MatchStatus: PlayerMatchStatusUndefined,
	}
}

func (s *Seat) IsMatchOver() bool {
	return s.MatchStatus != PlayerMatchStatusUndefined
}

type Stats struct {
	Shots int
	Hits  int
	Sunk  int
}

func (st *Stats) record(outcome ShotOutcome) {
	st.Shots++
	if outcome.IsHit() {
		st.Hits++
	}
	if outcome == ShotSunk {
		st.Sunk++
	}
}

// Accuracy is the rounded percentage of shots that hit a ship.
func (st Stats) Accuracy() int {
	if st.Shots == 0 {
		return 0
	}
	return (st.Hits*100 + st.Shots/2) / st.Shots
}
