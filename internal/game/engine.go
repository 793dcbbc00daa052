package game

import "errors"

// Every error from Apply means the command was a no-op and the round is
// returned unchanged.
var (
	ErrWrongPhase     = errors.New("command not allowed in this phase")
	ErrNoSuchSlot     = errors.New("no such slot")
	ErrUnknownCommand = errors.New("unknown command")
)

type CommandType string

const (
	CmdMovePrev   CommandType = "MovePrev"
	CmdMoveNext   CommandType = "MoveNext"
	CmdJump       CommandType = "Jump"
	CmdTogglePick CommandType = "TogglePick"
	CmdSubmit     CommandType = "Submit"
)

/*
	CmdMovePrev / CmdMoveNext -> EvtCursorMoved, or EvtItemsSwapped while an item is picked
	CmdJump                   -> same as moves, to an explicit slot
	CmdTogglePick             -> EvtPickToggled
	CmdSubmit                 -> EvtSubmitted (carries the Result)
*/

type Command struct {
	Type CommandType
	Slot int // 0-based, CmdJump only
}

type EventType string

const (
	EvtCursorMoved  EventType = "CursorMoved"
	EvtItemsSwapped EventType = "ItemsSwapped"
	EvtPickToggled  EventType = "PickToggled"
	EvtSubmitted    EventType = "Submitted"
)

type Event struct {
	Type     EventType
	Item     string // the active item
	Other    string // the item it swapped with or the cursor moved to
	From     int
	To       int
	Selected bool
	Result   Result
}

// Apply runs one reorder command. The input round is never modified.
func Apply(r Round, cmd Command) ([]Event, Round, error) {
	if r.Phase != PhaseAwaitingReorder {
		return nil, r, ErrWrongPhase
	}
	active := r.activeIndex()
	if active < 0 {
		return nil, r, ErrNoSuchSlot
	}

	switch cmd.Type {
	case CmdMovePrev:
		return moveTo(r, active, wrapSlot(r.Items[active].CurrentIndex-1, r.Len()))
	case CmdMoveNext:
		return moveTo(r, active, wrapSlot(r.Items[active].CurrentIndex+1, r.Len()))
	case CmdJump:
		if cmd.Slot < 0 || cmd.Slot >= r.Len() {
			return nil, r, ErrNoSuchSlot
		}
		return moveTo(r, active, cmd.Slot)
	case CmdTogglePick:
		out := r.clone()
		it := &out.Items[active]
		it.Selected = !it.Selected
		return []Event{{Type: EvtPickToggled, Item: it.Name, From: it.CurrentIndex, To: it.CurrentIndex, Selected: it.Selected}}, out, nil
	case CmdSubmit:
		out := r.clone()
		res := Score(out.Items)
		out.Phase = PhaseFinished
		out.Result = &res
		return []Event{{Type: EvtSubmitted, Result: res}}, out, nil
	default:
		return nil, r, ErrUnknownCommand
	}
}

func wrapSlot(slot, n int) int {
	return ((slot % n) + n) % n
}

// moveTo either moves the cursor to slot or, with an item picked, swaps the
// picked item into slot so the cursor travels with it.
func moveTo(r Round, active, slot int) ([]Event, Round, error) {
	from := r.Items[active].CurrentIndex
	if from == slot {
		return nil, r, nil
	}
	other := r.indexAtSlot(slot)
	if other < 0 {
		return nil, r, ErrNoSuchSlot
	}

	out := r.clone()
	a, b := &out.Items[active], &out.Items[other]
	if a.Selected {
		a.CurrentIndex, b.CurrentIndex = b.CurrentIndex, a.CurrentIndex
		return []Event{{Type: EvtItemsSwapped, Item: a.Name, Other: b.Name, From: from, To: slot, Selected: true}}, out, nil
	}
	a.Active = false
	b.Active = true
	return []Event{{Type: EvtCursorMoved, Item: a.Name, Other: b.Name, From: from, To: slot}}, out, nil
}
