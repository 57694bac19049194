// Package quiz is the click-to-select, click-to-place matching mini-game:
// three particle tokens, three labeled target slots, correctness feedback and
// completion detection. It is pure state driven by frame time; drawing and
// click routing live in the overlay layer.
package quiz

import (
	"fmt"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
)

// SlotState is the visual state of one target slot.
type SlotState uint8

const (
	SlotEmpty SlotState = iota
	SlotCorrect
	// SlotFlashing marks the timed "incorrect" feedback state; the slot
	// reverts to empty when the flash expires.
	SlotFlashing
)

// mismatchFlashSeconds is how long a slot shows the incorrect state.
const mismatchFlashSeconds = 2.0

// Token is one draggable answer card. Placed tokens are removed from the
// pool permanently (until Reset).
type Token struct {
	Kind   atom.Kind
	Placed bool
}

// Slot is one named target zone.
type Slot struct {
	Target atom.Kind
	Prompt string // the clue shown while the slot is empty
	Label  string // current display label; the matched name once filled
	State  SlotState
	flash  float32
}

// Feedback receives match/mismatch/completion notifications, typically wired
// to audio. May be nil.
type Feedback interface {
	Match(kind atom.Kind)
	Mismatch(kind atom.Kind)
	Complete()
}

// Game is the quiz state machine. State resets whenever the quiz scene is
// (re-)entered.
type Game struct {
	tokens    []Token
	slots     []Slot
	selected  int
	status    string
	completed bool
	fb        Feedback
}

// New returns a quiz in its initial state. fb may be nil.
func New(fb Feedback) *Game {
	g := &Game{fb: fb}
	g.Reset()
	return g
}

// Reset restores the full token pool, empties all slots and clears the
// selection and completion state.
func (g *Game) Reset() {
	g.tokens = []Token{
		{Kind: atom.Proton},
		{Kind: atom.Neutron},
		{Kind: atom.Electron},
	}
	g.slots = []Slot{
		{Target: atom.Proton, Prompt: "Positive charge, in the nucleus"},
		{Target: atom.Neutron, Prompt: "No charge, in the nucleus"},
		{Target: atom.Electron, Prompt: "Negative charge, orbits the nucleus"},
	}
	for i := range g.slots {
		g.slots[i].Label = g.slots[i].Prompt
	}
	g.selected = -1
	g.completed = false
	g.status = "Tap a card, then tap the slot it belongs to."
}

// Tokens returns the token pool.
func (g *Game) Tokens() []Token { return g.tokens }

// Slots returns the target slots.
func (g *Game) Slots() []Slot { return g.slots }

// Selected returns the index of the currently selected token, or -1.
func (g *Game) Selected() int { return g.selected }

// Status returns the current status message.
func (g *Game) Status() string { return g.status }

// Completed reports whether all slots are filled correctly.
func (g *Game) Completed() bool { return g.completed }

// SelectToken marks token i as the current selection. Selecting a new token
// deselects the previous one; placed tokens are gone from the pool and
// cannot be selected.
func (g *Game) SelectToken(i int) {
	if i < 0 || i >= len(g.tokens) || g.tokens[i].Placed {
		return
	}
	g.selected = i
}

// ClickSlot attempts to place the currently selected token into slot i.
func (g *Game) ClickSlot(i int) {
	if i < 0 || i >= len(g.slots) {
		return
	}
	slot := &g.slots[i]
	if slot.State == SlotCorrect {
		return
	}
	if g.selected < 0 {
		g.status = "Pick a card first, then tap a slot."
		return
	}
	token := &g.tokens[g.selected]
	g.selected = -1

	if token.Kind != slot.Target {
		slot.State = SlotFlashing
		slot.flash = mismatchFlashSeconds
		g.status = fmt.Sprintf("Not quite. The %s belongs somewhere else. Try again.", token.Kind)
		if g.fb != nil {
			g.fb.Mismatch(token.Kind)
		}
		return
	}

	token.Placed = true
	slot.State = SlotCorrect
	slot.Label = token.Kind.String()
	g.status = fmt.Sprintf("Correct! That's the %s.", token.Kind)
	if g.fb != nil {
		g.fb.Match(token.Kind)
	}
	g.checkComplete()
}

// checkComplete runs after every successful match and fires the completion
// feedback exactly once, when the count of correct slots reaches the total.
func (g *Game) checkComplete() {
	if g.completed {
		return
	}
	for i := range g.slots {
		if g.slots[i].State != SlotCorrect {
			return
		}
	}
	g.completed = true
	g.status = "All matched. You know your atom!"
	if g.fb != nil {
		g.fb.Complete()
	}
}

// Update advances the mismatch flash timers; expired slots revert to empty.
func (g *Game) Update(dt float32) {
	for i := range g.slots {
		s := &g.slots[i]
		if s.State != SlotFlashing {
			continue
		}
		s.flash -= dt
		if s.flash <= 0 {
			s.State = SlotEmpty
			s.flash = 0
		}
	}
}
