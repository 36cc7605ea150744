package battleship

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type TargetMode uint8

const (
	// No damaged ship known, searching.
	TargetModeHunt TargetMode = iota
	// Finishing off a ship that has been hit.
	TargetModeTarget
)

func (m TargetMode) String() string {
	switch m {
	case TargetModeHunt:
		return "hunt"
	case TargetModeTarget:
		return "target"
	default:
		return "unknown"
	}
}

type Orientation uint8

const (
	OrientationUnknown Orientation = iota
	OrientationRow
	OrientationColumn
)

func (o Orientation) String() string {
	switch o {
	case OrientationRow:
		return "row"
	case OrientationColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Targeting is the computer opponent. It hunts on a checkerboard until a
// ship is hit, then probes around the hit and, once two hits give the
// ship's line, both open ends of that line until the ship sinks.
type Targeting struct {
	mode        TargetMode
	hits        []Cell
	candidates  []Cell
	orientation Orientation

	// last board seen, used to drop closed cells when queueing
	view   TargetView
	choice ChoiceFunc
	logger *log.Logger
}

var _ MoveChooser = (*Targeting)(nil)

type TargetingOption func(*Targeting)

// WithChoice replaces the hunt-mode pick. Tests use it to force a cell.
func WithChoice(choice ChoiceFunc) TargetingOption {
	return func(t *Targeting) {
		t.choice = choice
	}
}

// WithTargetView sets the board being attacked before the first
// NextTarget call. NextTarget replaces it with whatever view it is given.
func WithTargetView(view TargetView) TargetingOption {
	return func(t *Targeting) {
		t.view = view
	}
}

func WithLogger(logger *log.Logger) TargetingOption {
	return func(t *Targeting) {
		t.logger = logger
	}
}

// NewTargeting returns a targeting state in hunt mode that picks hunt
// cells uniformly with rng. rng may be nil when WithChoice is given.
func NewTargeting(rng *rand.Rand, opts ...TargetingOption) *Targeting {
	t := &Targeting{
		mode:   TargetModeHunt,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.choice == nil {
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		t.choice = RandomChoice(rng)
	}
	return t
}

func (t *Targeting) Mode() TargetMode {
	return t.mode
}

func (t *Targeting) Orientation() Orientation {
	return t.orientation
}

func (t *Targeting) Hits() []Cell {
	out := make([]Cell, len(t.hits))
	copy(out, t.hits)
	return out
}

// Candidates returns the pending queue. Cells off the board or already
// fired when the queue is built are left out; cells fired after that are
// skipped by NextTarget.
func (t *Targeting) Candidates() []Cell {
	out := make([]Cell, len(t.candidates))
	copy(out, t.candidates)
	return out
}

func (t *Targeting) NextTarget(view TargetView) (Cell, error) {
	t.view = view

	if t.mode == TargetModeTarget {
		for len(t.candidates) > 0 {
			var c Cell
			c, t.candidates = t.candidates[0], t.candidates[1:]

			if isOpen(view, c) {
				return c, nil
			}
		}
	}

	cells := huntCandidates(view)
	if len(cells) == 0 {
		return Cell{}, cerr.ErrNoTargetsLeft
	}
	return t.choice(cells), nil
}

func (t *Targeting) RecordOutcome(c Cell, outcome ShotOutcome) {
	switch outcome {
	case ShotHit:
		t.hits = append(t.hits, c)
		if t.mode != TargetModeTarget {
			t.logger.Debug("targeting [RecordOutcome] switching to target", "cell", c)
			t.mode = TargetModeTarget
		}

		t.updateOrientation()
		if t.orientation == OrientationUnknown {
			t.candidates = t.keepOpen(neighbours(c))
		} else {
			t.candidates = t.keepOpen(t.lineEnds())
		}
		t.logger.Debug("targeting [RecordOutcome]", "hits", len(t.hits), "orientation", t.orientation, "candidates", t.candidates)

	case ShotSunk:
		t.logger.Debug("targeting [RecordOutcome] ship sunk, back to hunt", "cell", c)
		t.reset()
	}
}

func (t *Targeting) reset() {
	t.mode = TargetModeHunt
	t.hits = nil
	t.candidates = nil
	t.orientation = OrientationUnknown
}

func (t *Targeting) updateOrientation() {
	if len(t.hits) < 2 {
		return
	}

	first, second := t.hits[0], t.hits[1]
	if first.Row == second.Row {
		t.orientation = OrientationRow
	} else if first.Col == second.Col {
		t.orientation = OrientationColumn
	}
}

// The two cells one step past the known extent of the hit line.
func (t *Targeting) lineEnds() []Cell {
	first := t.hits[0]

	if t.orientation == OrientationRow {
		lo, hi := first.Col, first.Col
		for _, h := range t.hits {
			lo = min(lo, h.Col)
			hi = max(hi, h.Col)
		}
		return []Cell{NewCell(first.Row, lo-1), NewCell(first.Row, hi+1)}
	}

	lo, hi := first.Row, first.Row
	for _, h := range t.hits {
		lo = min(lo, h.Row)
		hi = max(hi, h.Row)
	}
	return []Cell{NewCell(lo-1, first.Col), NewCell(hi+1, first.Col)}
}

func neighbours(c Cell) []Cell {
	out := make([]Cell, 0, len(orthogonalOffsets))
	for _, off := range orthogonalOffsets {
		out = append(out, c.Add(off[0], off[1]))
	}
	return out
}

func (t *Targeting) keepOpen(cells []Cell) []Cell {
	if t.view == nil {
		return cells
	}

	open := cells[:0]
	for _, c := range cells {
		if isOpen(t.view, c) {
			open = append(open, c)
		}
	}
	return open
}

func isOpen(view TargetView, c Cell) bool {
	size := view.Size()
	if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
		return false
	}
	return !view.IsFired(c)
}

// Unfired cells with even row+col, or every unfired cell once the
// checkerboard is exhausted.
func huntCandidates(view TargetView) []Cell {
	size := view.Size()
	parity := make([]Cell, 0, size*size/2+1)
	all := make([]Cell, 0, size*size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := NewCell(row, col)
			if view.IsFired(c) {
				continue
			}
			all = append(all, c)
			if (row+col)%2 == 0 {
				parity = append(parity, c)
			}
		}
	}

	if len(parity) > 0 {
		return parity
	}
	return all
}
