package game

import (
	"testing"

	"github.com/akgondber/spinner-memory-game-cli/internal/catalog"
)

// identityRand never reorders anything and always picks cell 0.
type identityRand struct{}

func (identityRand) IntN(int) int                { return 0 }
func (identityRand) Shuffle(int, func(i, j int)) {}

// rotateRand shuffles [0..n) into [1, 2, ..., n-1, 0]: no fixed points.
type rotateRand struct{}

func (rotateRand) IntN(n int) int { return n - 1 }
func (rotateRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		swap(i, i+1)
	}
}

func testSpinners(n int) []catalog.Spinner {
	out := make([]catalog.Spinner, n)
	for i := range out {
		name := string(rune('A' + i))
		out[i] = catalog.Spinner{Name: name, Frames: []string{name + "1", name + "2", name + "3"}}
	}
	return out
}

// reorderRound builds a round awaiting reorder. Items are named A.. in
// presentation order and item i sits in slots[i]; the cursor is on the item
// in slot activeSlot.
func reorderRound(t *testing.T, slots []int, activeSlot int, selected bool) Round {
	t.Helper()
	r := NewRound(testSpinners(len(slots)), identityRand{})
	for i := range r.Items {
		r.Items[i].CurrentIndex = slots[i]
		r.Items[i].Active = slots[i] == activeSlot
		r.Items[i].Selected = r.Items[i].Active && selected
	}
	r.Phase = PhaseAwaitingReorder
	if err := r.Validate(); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return r
}

func slotsByName(r Round) map[string]int {
	out := make(map[string]int, r.Len())
	for _, it := range r.Items {
		out[it.Name] = it.CurrentIndex
	}
	return out
}

func activeName(r Round) string {
	it, ok := r.Active()
	if !ok {
		return ""
	}
	return it.Name
}
