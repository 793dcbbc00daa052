package game

import "testing"

func TestDriverHoldsEachItemForHoldTicks(t *testing.T) {
	const hold = 5
	r := NewRound(testSpinners(3), identityRand{})
	d := NewDriver(r, Grid{Rows: 10, Cols: 10}, hold, NewRand(1))

	var shown []string
	ticks := 0
	for !d.Done() {
		if it, ok := d.Current(); ok && (len(shown) == 0 || shown[len(shown)-1] != it.Name) {
			shown = append(shown, it.Name)
		}
		d.Step()
		ticks++
		if ticks > 100 {
			t.Fatal("driver never finished")
		}
	}
	if ticks != 3*hold {
		t.Fatalf("ticks = %d, want %d", ticks, 3*hold)
	}
	if got := len(shown); got != 3 || shown[0] != "A" || shown[1] != "B" || shown[2] != "C" {
		t.Fatalf("shown = %v, want [A B C]", shown)
	}
}

func TestDriverAnimatesAndWrapsFrames(t *testing.T) {
	r := NewRound(testSpinners(1), identityRand{})
	d := NewDriver(r, Grid{Rows: 2, Cols: 2}, 5, identityRand{})

	want := []string{"A1", "A2", "A3", "A1", "A2"}
	for i, w := range want {
		it, ok := d.Current()
		if !ok {
			t.Fatalf("tick %d: nothing on screen", i)
		}
		if it.Glyph() != w {
			t.Fatalf("tick %d: glyph = %q, want %q", i, it.Glyph(), w)
		}
		d.Step()
	}
	if !d.Done() {
		t.Fatal("driver should be done after the hold elapsed")
	}
}

func TestDriverCellsStayOnGrid(t *testing.T) {
	grid := Grid{Rows: 3, Cols: 4}
	r := NewRound(testSpinners(9), NewRand(5))
	d := NewDriver(r, grid, 1, NewRand(6))
	for !d.Done() {
		c := d.Cell()
		if c.Row < 0 || c.Row >= grid.Rows || c.Col < 0 || c.Col >= grid.Cols {
			t.Fatalf("cell %+v outside %+v", c, grid)
		}
		d.Step()
	}
}

func TestDriverPresentsRoundWhenDone(t *testing.T) {
	r := NewRound(testSpinners(9), identityRand{})
	d := NewDriver(r, Grid{Rows: 10, Cols: 10}, 1, rotateRand{})

	for i := 0; i < 8; i++ {
		if d.Step() {
			t.Fatalf("finished early after %d steps", i+1)
		}
		if d.Round().Phase != PhasePresenting {
			t.Fatalf("phase changed early: %v", d.Round().Phase)
		}
	}
	if !d.Step() {
		t.Fatal("expected the ninth step to finish presentation")
	}

	got := d.Round()
	if got.Phase != PhaseAwaitingReorder {
		t.Fatalf("phase = %v, want awaiting_reorder", got.Phase)
	}
	if got.ID != r.ID {
		t.Fatal("round identity changed during presentation")
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, ok := d.Current(); ok {
		t.Fatal("nothing should be on the grid after presentation")
	}

	// Further steps change nothing.
	before := d.Round()
	if !d.Step() {
		t.Fatal("Step after done should keep reporting done")
	}
	if d.Round().Items[0].CurrentIndex != before.Items[0].CurrentIndex || d.Shown() != 9 {
		t.Fatal("stepping a finished driver changed state")
	}
}

func TestDriverClampsHoldTicks(t *testing.T) {
	d := NewDriver(NewRound(testSpinners(2), identityRand{}), Grid{Rows: 1, Cols: 1}, 0, identityRand{})
	d.Step()
	if d.Shown() != 1 {
		t.Fatalf("shown = %d after one step, want 1", d.Shown())
	}
}

func TestDriverEmptyRound(t *testing.T) {
	d := NewDriver(NewRound(nil, identityRand{}), Grid{Rows: 1, Cols: 1}, 3, identityRand{})
	if !d.Step() {
		t.Fatal("an empty round should finish on the first step")
	}
	if d.Round().Phase != PhaseAwaitingReorder {
		t.Fatalf("phase = %v", d.Round().Phase)
	}
}
