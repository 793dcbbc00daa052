package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/akgondber/spinner-memory-game-cli/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal     = "global"
	scopeIntro      = "intro"
	scopePresenting = "presenting"
	scopeReorder    = "reorder"
	scopeCarry      = "carry"
	scopeFinished   = "finished"
)

const (
	actionQuit       Action = "quit"
	actionNewRound   Action = "new_round"
	actionPrev       Action = "prev"
	actionNext       Action = "next"
	actionJump       Action = "jump"
	actionTogglePick Action = "toggle_pick"
	actionSubmit     Action = "submit"
)

var digitKeys = []string{"1..9", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(scope, Binding{Action: action, Keys: keys, Help: help})
	}

	// Global fallback lookup; also the footer menu.
	reg(scopeGlobal, actionNewRound, []string{"n"}, "start a new round")
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	// Cursor mode: nothing picked.
	reg(scopeReorder, actionPrev, []string{"↑/↓", "up", "k"}, "activate previous/next item")
	reg(scopeReorder, actionNext, []string{"down", "j"}, "")
	reg(scopeReorder, actionTogglePick, []string{"<space>", "space"}, "select active spinner to move")
	reg(scopeReorder, actionJump, digitKeys, "go to item at number")
	reg(scopeReorder, actionSubmit, []string{"s", "enter"}, "submit")

	// Carry mode: an item is picked and travels with the cursor.
	reg(scopeCarry, actionPrev, []string{"↑/↓", "up", "k"}, "swap selected item with previous/next one")
	reg(scopeCarry, actionNext, []string{"down", "j"}, "")
	reg(scopeCarry, actionTogglePick, []string{"<space>", "space"}, "place selected spinner")
	reg(scopeCarry, actionJump, digitKeys, "swap selected item to one with specified number")
	reg(scopeCarry, actionSubmit, []string{"s", "enter"}, "submit")

	return r
}

// Register adds b to scope. Keys already bound in the scope are skipped.
func (r *KeyRegistry) Register(scope string, b Binding) {
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 || r.scopeHasAnyKey(scope, keys) {
		return
	}
	if _, ok := r.indexByScope[scope]; !ok {
		r.indexByScope[scope] = make(map[string]*Binding)
	}
	b.Keys = keys
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &b)
	for _, k := range keys {
		r.indexByScope[scope][k] = &b
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for a key in scope, falling back to global.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns the scope's bindings for the footer. Bindings with
// no help text ride along with the previous entry and are skipped.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// jumpSlot maps a pressed key to a 0-based slot: its position among the
// binding's pressable keys. Labels such as "1..9" only appear in help.
func (b *Binding) jumpSlot(keyName string) (int, bool) {
	slot := 0
	for _, k := range b.Keys {
		if isHelpLabel(k) {
			continue
		}
		if k == keyName {
			return slot, true
		}
		slot++
	}
	return 0, false
}

func isHelpLabel(k string) bool {
	if len(k) < 2 {
		return false
	}
	return strings.Contains(k, "..") || strings.Contains(k, "/") || strings.HasPrefix(k, "<")
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// ApplyOverrides rebinds actions from the config file. Scope and action must
// already exist, and no key may end up bound twice in a scope.
func (r *KeyRegistry) ApplyOverrides(items []config.KeyOverride) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("key override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("key override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("key override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("key override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	scopes := make([]string, 0, len(r.bindingsByScope))
	for scope := range r.bindingsByScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		seen := make(map[string]Action)
		for _, b := range r.bindingsByScope[scope] {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("key override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
