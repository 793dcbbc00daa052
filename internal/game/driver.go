package game

// Grid is the board items are flashed on during presentation.
type Grid struct {
	Rows int
	Cols int
}

type Cell struct {
	Row int
	Col int
}

// Driver walks a presenting round one frame tick at a time. It owns no
// timer: whoever calls Step decides how long a tick is.
type Driver struct {
	round     Round
	grid      Grid
	holdTicks int
	rnd       Rand

	pos   int // index into round.Items, which are in presentation order
	held  int
	frame int
	cell  Cell
	done  bool
}

func NewDriver(r Round, grid Grid, holdTicks int, rnd Rand) Driver {
	if holdTicks < 1 {
		holdTicks = 1
	}
	d := Driver{round: r, grid: grid, holdTicks: holdTicks, rnd: rnd}
	d.cell = d.randomCell()
	return d
}

func (d *Driver) randomCell() Cell {
	if d.grid.Rows < 1 || d.grid.Cols < 1 {
		return Cell{}
	}
	return Cell{Row: d.rnd.IntN(d.grid.Rows), Col: d.rnd.IntN(d.grid.Cols)}
}

// Step advances one tick. It returns true once every item has been shown;
// by then the round has been presented for reordering.
func (d *Driver) Step() bool {
	if d.done {
		return true
	}
	if d.pos >= len(d.round.Items) {
		d.finish()
		return true
	}

	frames := len(d.round.Items[d.pos].Frames)
	if frames > 0 {
		d.frame = (d.frame + 1) % frames
	}
	d.held++
	if d.held < d.holdTicks {
		return false
	}

	d.pos++
	d.held = 0
	d.frame = 0
	if d.pos == len(d.round.Items) {
		d.finish()
		return true
	}
	d.cell = d.randomCell()
	return false
}

func (d *Driver) finish() {
	d.round = Present(d.round, d.rnd)
	d.done = true
}

// Current returns the item on screen, if presentation is still running.
func (d Driver) Current() (Item, bool) {
	if d.done || d.pos >= len(d.round.Items) {
		return Item{}, false
	}
	it := d.round.Items[d.pos]
	it.Frame = d.frame
	return it, true
}

func (d Driver) Cell() Cell   { return d.cell }
func (d Driver) Grid() Grid   { return d.grid }
func (d Driver) Shown() int   { return d.pos }
func (d Driver) Done() bool   { return d.done }
func (d Driver) Round() Round { return d.round }
