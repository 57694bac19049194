package ui

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed theme.css
var themeCSS string

// DefaultStylesheet parses the embedded theme. Panics on parse failure since
// the theme ships inside the binary.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(themeCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded theme: %v", err))
	}
	return sheet
}

const (
	toastSeconds  = 2.5
	lessonWrapLen = 42
	quizTokens    = 3
	quizSlots     = 3
)

// QuizTokenView is the display state of one draggable card.
type QuizTokenView struct {
	Label    string
	Placed   bool
	Selected bool
}

// QuizSlotView is the display state of one drop target.
type QuizSlotView struct {
	Prompt   string
	Label    string
	Correct  bool
	Flashing bool
}

// QuizView is everything the overlay needs to render the matching board.
// The game layer builds it each time the board changes; ui does not depend
// on the quiz package.
type QuizView struct {
	Tokens []QuizTokenView
	Slots  []QuizSlotView
	Status string
}

// Overlay owns the 2D nodes drawn over the 3D view: placement hint, lesson
// panel, nav buttons, quiz board, toast, and error panel. It registers its
// nodes with the engine once and afterwards mutates text, class, and
// visibility in place.
type Overlay struct {
	eng *Engine

	hint        *Node
	lessonPanel *Node
	lessonTitle *Node
	lessonBody  *Node
	navPrev     *Node
	navNext     *Node

	quizPanel  *Node
	quizStatus *Node
	tokens     [quizTokens]*Node
	slots      [quizSlots]*Node

	toast     *Node
	toastLeft float32

	errPanel *Node
}

// NewOverlay builds the node tree, lays out the code-positioned elements for
// the given screen size, and hands all nodes to the engine. Everything except
// the placement hint starts hidden.
func NewOverlay(eng *Engine, screenW, screenH float32) *Overlay {
	ov := &Overlay{
		eng:         eng,
		hint:        NewNode("label", "hint", "hint", ""),
		lessonPanel: NewNode("panel", "panel", "lesson-panel", ""),
		lessonTitle: NewNode("label", "lesson-title", "", ""),
		lessonBody:  NewNode("label", "lesson-body", "", ""),
		navPrev:     NewNode("button", "nav", "nav-prev", "< Back"),
		navNext:     NewNode("button", "nav", "nav-next", "Next >"),
		quizPanel:   NewNode("panel", "panel", "quiz-panel", ""),
		quizStatus:  NewNode("label", "quiz-status", "quiz-status", ""),
		toast:       NewNode("label", "toast", "toast", ""),
		errPanel:    NewNode("label", "error", "error-panel", ""),
	}
	for i := range ov.tokens {
		ov.tokens[i] = NewNode("button", "token", fmt.Sprintf("token-%d", i), "")
	}
	for i := range ov.slots {
		ov.slots[i] = NewNode("button", "slot", fmt.Sprintf("slot-%d", i), "")
	}
	ov.layout(screenW, screenH)

	ov.ShowLesson(false)
	ov.ShowQuiz(false)
	ov.ShowNav(false)
	ov.toast.Visible = false
	ov.errPanel.Visible = false

	nodes := []*Node{
		ov.hint,
		ov.lessonPanel, ov.lessonTitle, ov.lessonBody,
		ov.navPrev, ov.navNext,
		ov.quizPanel, ov.quizStatus,
	}
	nodes = append(nodes, ov.slots[:]...)
	nodes = append(nodes, ov.tokens[:]...)
	nodes = append(nodes, ov.toast, ov.errPanel)
	eng.SetNodes(nodes)
	return ov
}

// Relayout repositions the code-placed elements for a new screen size, e.g.
// once the real (possibly fullscreen) window exists.
func (ov *Overlay) Relayout(screenW, screenH float32) {
	ov.layout(screenW, screenH)
	ov.eng.Invalidate()
}

// layout positions the elements the stylesheet does not place: lesson text
// inside its panel, nav buttons, and the quiz grid.
func (ov *Overlay) layout(screenW, screenH float32) {
	px := float32(24)
	py := screenH - 260
	ov.lessonPanel.Bounds.X = px
	ov.lessonPanel.Bounds.Y = py
	ov.lessonTitle.Bounds.X = px + 16
	ov.lessonTitle.Bounds.Y = py + 14
	ov.lessonBody.Bounds.X = px + 16
	ov.lessonBody.Bounds.Y = py + 52

	ov.navPrev.Bounds.X = screenW - 260
	ov.navPrev.Bounds.Y = screenH - 64
	ov.navNext.Bounds.X = screenW - 136
	ov.navNext.Bounds.Y = screenH - 64

	qx := (screenW - 560) / 2
	qy := (screenH - 330) / 2
	ov.quizPanel.Bounds.X = qx
	ov.quizPanel.Bounds.Y = qy
	ov.quizStatus.Bounds.X = qx + 20
	ov.quizStatus.Bounds.Y = qy + 14
	for i := range ov.tokens {
		ov.tokens[i].Bounds.X = qx + 20 + float32(i)*170
		ov.tokens[i].Bounds.Y = qy + 56
	}
	for i := range ov.slots {
		ov.slots[i].Bounds.X = qx + 20
		ov.slots[i].Bounds.Y = qy + 126 + float32(i)*66
	}
}

// SetHint sets and shows the placement guidance line; an empty string hides it.
func (ov *Overlay) SetHint(text string) {
	ov.hint.Text = text
	ov.hint.Visible = text != ""
}

// SetLesson updates the lesson panel's title and word-wrapped body.
func (ov *Overlay) SetLesson(title, body string) {
	ov.lessonTitle.Text = title
	ov.lessonBody.Text = wrapText(body, lessonWrapLen)
}

// ShowLesson toggles the lesson panel and its text.
func (ov *Overlay) ShowLesson(v bool) {
	ov.lessonPanel.Visible = v
	ov.lessonTitle.Visible = v
	ov.lessonBody.Visible = v
}

// ShowQuiz toggles the quiz board.
func (ov *Overlay) ShowQuiz(v bool) {
	ov.quizPanel.Visible = v
	ov.quizStatus.Visible = v
	for _, n := range ov.tokens {
		n.Visible = v
	}
	for _, n := range ov.slots {
		n.Visible = v
	}
}

// ShowNav toggles the prev/next buttons.
func (ov *Overlay) ShowNav(v bool) {
	ov.navPrev.Visible = v
	ov.navNext.Visible = v
}

// SetQuiz rewrites the quiz board from a view snapshot. The style cache is
// only invalidated when a class actually changed, so calling this every frame
// is cheap.
func (ov *Overlay) SetQuiz(view QuizView) {
	ov.quizStatus.Text = view.Status
	changed := false
	setClass := func(n *Node, class string) {
		if n.Class != class {
			n.Class = class
			changed = true
		}
	}
	for i, n := range ov.tokens {
		if i >= len(view.Tokens) {
			n.Visible = false
			continue
		}
		tok := view.Tokens[i]
		n.Text = tok.Label
		switch {
		case tok.Placed:
			setClass(n, "token token-placed")
		case tok.Selected:
			setClass(n, "token token-selected")
		default:
			setClass(n, "token")
		}
	}
	for i, n := range ov.slots {
		if i >= len(view.Slots) {
			n.Visible = false
			continue
		}
		slot := view.Slots[i]
		n.Text = slot.Label
		switch {
		case slot.Correct:
			setClass(n, "slot slot-correct")
		case slot.Flashing:
			setClass(n, "slot slot-flash")
		default:
			setClass(n, "slot")
		}
	}
	if changed {
		ov.eng.Invalidate()
	}
}

// Toast shows a transient message near the bottom of the screen.
func (ov *Overlay) Toast(msg string) {
	ov.toast.Text = msg
	ov.toast.Visible = true
	ov.toastLeft = toastSeconds
}

// ShowError displays a blocking error panel and hides the interactive overlays.
func (ov *Overlay) ShowError(msg string) {
	ov.errPanel.Text = wrapText(msg, 40)
	ov.errPanel.Visible = true
	ov.ShowLesson(false)
	ov.ShowQuiz(false)
	ov.ShowNav(false)
	ov.SetHint("")
}

// Update ages the toast.
func (ov *Overlay) Update(dt float32) {
	if !ov.toast.Visible {
		return
	}
	ov.toastLeft -= dt
	if ov.toastLeft <= 0 {
		ov.toast.Visible = false
	}
}

// Click returns the ID of the button under the point, or "".
func (ov *Overlay) Click(x, y float32) string {
	return ov.eng.HitButton(x, y)
}

// wrapText inserts newlines at word boundaries so no line exceeds maxChars.
func wrapText(s string, maxChars int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > maxChars {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
