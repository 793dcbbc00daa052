package game

import "fmt"

// Result is the outcome of a submitted round.
type Result struct {
	Matched int
	Total   int
	Won     bool
}

func (r Result) String() string {
	if r.Won {
		return "You won!"
	}
	return fmt.Sprintf("You lost (%d out of %d)", r.Matched, r.Total)
}

// Correct is the one rule for "this item is where it was shown".
func Correct(it Item) bool {
	return it.CurrentIndex == it.OriginalIndex
}

// Score counts the items sitting in their presentation slot.
func Score(items []Item) Result {
	matched := 0
	for _, it := range items {
		if Correct(it) {
			matched++
		}
	}
	return Result{Matched: matched, Total: len(items), Won: matched == len(items)}
}
