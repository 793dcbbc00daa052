// Package game holds the round state machine: presentation, shuffling,
// reordering and scoring. Nothing here touches the terminal or real time.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/akgondber/spinner-memory-game-cli/internal/catalog"
)

var ErrInvalidRound = errors.New("invalid round")

type Phase int

const (
	PhasePresenting Phase = iota
	PhaseAwaitingReorder
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePresenting:
		return "presenting"
	case PhaseAwaitingReorder:
		return "awaiting_reorder"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Item is one spinner in a round. Name is its identity.
type Item struct {
	Name          string
	Frames        []string
	Frame         int
	OriginalIndex int
	CurrentIndex  int
	Active        bool
	Selected      bool
}

// Glyph returns the frame currently shown for the item.
func (it Item) Glyph() string {
	if len(it.Frames) == 0 {
		return ""
	}
	return it.Frames[it.Frame%len(it.Frames)]
}

func (it Item) nextFrame() int {
	if len(it.Frames) == 0 {
		return 0
	}
	return (it.Frame + 1) % len(it.Frames)
}

// Round is one play-through. Items are kept in presentation order;
// CurrentIndex carries the player's arrangement.
type Round struct {
	ID     uuid.UUID
	Items  []Item
	Phase  Phase
	Result *Result
}

// NewRound shuffles the catalog into a presentation order and returns a
// round in PhasePresenting.
func NewRound(spinners []catalog.Spinner, rnd Rand) Round {
	order := slices.Clone(spinners)
	rnd.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	items := make([]Item, len(order))
	for i, s := range order {
		items[i] = Item{
			Name:          s.Name,
			Frames:        slices.Clone(s.Frames),
			OriginalIndex: i,
			CurrentIndex:  i,
		}
	}
	return Round{ID: uuid.New(), Items: items, Phase: PhasePresenting}
}

func (r Round) Len() int { return len(r.Items) }

func (r Round) clone() Round {
	out := r
	out.Items = slices.Clone(r.Items)
	if r.Result != nil {
		res := *r.Result
		out.Result = &res
	}
	return out
}

// Slots returns the items ordered by their current slot.
func (r Round) Slots() []Item {
	out := slices.Clone(r.Items)
	slices.SortFunc(out, func(a, b Item) int { return a.CurrentIndex - b.CurrentIndex })
	return out
}

// Presentation returns the items in the order they were shown.
func (r Round) Presentation() []Item {
	out := slices.Clone(r.Items)
	slices.SortFunc(out, func(a, b Item) int { return a.OriginalIndex - b.OriginalIndex })
	return out
}

// Active returns the item under the cursor.
func (r Round) Active() (Item, bool) {
	if i := r.activeIndex(); i >= 0 {
		return r.Items[i], true
	}
	return Item{}, false
}

// HasSelected reports whether an item is picked up for moving.
func (r Round) HasSelected() bool {
	return slices.ContainsFunc(r.Items, func(it Item) bool { return it.Selected })
}

// Animate advances every item one frame.
func (r Round) Animate() Round {
	out := r.clone()
	for i := range out.Items {
		out.Items[i].Frame = out.Items[i].nextFrame()
	}
	return out
}

func (r Round) activeIndex() int {
	return slices.IndexFunc(r.Items, func(it Item) bool { return it.Active })
}

func (r Round) indexAtSlot(slot int) int {
	return slices.IndexFunc(r.Items, func(it Item) bool { return it.CurrentIndex == slot })
}

// Validate checks the slot permutation and cursor invariants.
func (r Round) Validate() error {
	n := len(r.Items)
	seen := make([]bool, n)
	active := 0
	for _, it := range r.Items {
		if it.CurrentIndex < 0 || it.CurrentIndex >= n || seen[it.CurrentIndex] {
			return fmt.Errorf("%w: slot %d of %q is not part of a permutation", ErrInvalidRound, it.CurrentIndex, it.Name)
		}
		seen[it.CurrentIndex] = true
		if it.Selected && !it.Active {
			return fmt.Errorf("%w: %q is selected but not active", ErrInvalidRound, it.Name)
		}
		if it.Active {
			active++
		}
	}
	if r.Phase == PhaseAwaitingReorder && n > 0 && active != 1 {
		return fmt.Errorf("%w: %d active items, want 1", ErrInvalidRound, active)
	}
	return nil
}
