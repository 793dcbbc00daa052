package game

// DefaultSlot is where the cursor starts, already holding its item.
const DefaultSlot = 3

func defaultSlot(n int) int {
	if n > DefaultSlot {
		return DefaultSlot
	}
	return 0
}

// Present turns a presented round into the player's editable list: slots are
// a uniform shuffle of [0,N) and the item at the default slot starts active
// and selected. Nothing prevents an item from keeping its original slot.
func Present(r Round, rnd Rand) Round {
	out := r.clone()
	n := len(out.Items)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rnd.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	start := defaultSlot(n)
	for i := range out.Items {
		it := &out.Items[i]
		it.CurrentIndex = perm[i]
		it.Frame = 0
		it.Active = it.CurrentIndex == start
		it.Selected = it.Active
	}
	out.Phase = PhaseAwaitingReorder
	out.Result = nil
	return out
}
