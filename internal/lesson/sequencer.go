// Package lesson drives the fixed six-scene teaching sequence. The sequencer
// owns the scene index, resets visual state on every transition, and decides
// which model emphasis and overlay the entering scene gets.
package lesson

import "github.com/Mo-Salah9/webar-atom/internal/atom"

// The six fixed scenes, in pedagogical order.
const (
	SceneIntro = iota
	SceneProtons
	SceneNeutrons
	SceneElectrons
	SceneQuiz
	SceneSummary
	SceneCount
)

// Model is the particle-model surface the sequencer drives. *atom.Atom
// implements it.
type Model interface {
	HighlightKind(k atom.Kind)
	ClearHighlights()
	SetEmphasis(k atom.Kind)
	ClearEmphasis()
	SuppressShells(suppress bool)
}

// Panel is the lesson overlay: a text panel, the quiz board and the
// navigation controls, each independently toggleable.
type Panel interface {
	SetLesson(title, body string)
	ShowLesson(visible bool)
	ShowQuiz(visible bool)
	ShowNav(visible bool)
}

// QuizControl resets the matching mini-game when its scene is entered.
type QuizControl interface {
	Reset()
}

// Sequencer is the scene/lesson state machine. Navigation is a total no-op
// until the atom has been placed.
type Sequencer struct {
	model   Model
	panel   Panel
	quiz    QuizControl
	content *Content

	index  int
	placed bool
}

// NewSequencer returns a sequencer at scene 0, before placement.
func NewSequencer(model Model, panel Panel, quiz QuizControl, content *Content) *Sequencer {
	return &Sequencer{model: model, panel: panel, quiz: quiz, content: content}
}

// Index returns the current scene index.
func (s *Sequencer) Index() int { return s.index }

// Placed reports whether navigation is enabled.
func (s *Sequencer) Placed() bool { return s.placed }

// NotifyPlaced records the first placement: it reveals the navigation
// controls and auto-navigates to the intro scene.
func (s *Sequencer) NotifyPlaced() {
	if s.placed {
		return
	}
	s.placed = true
	s.panel.ShowNav(true)
	s.apply(SceneIntro)
}

// Next advances one scene, clamped at the last.
func (s *Sequencer) Next() { s.GoTo(s.index + 1) }

// Prev steps back one scene, clamped at the first.
func (s *Sequencer) Prev() { s.GoTo(s.index - 1) }

// GoTo navigates to scene i, clamped to the valid range. Ignored entirely
// until the atom has been placed.
func (s *Sequencer) GoTo(i int) {
	if !s.placed {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > SceneCount-1 {
		i = SceneCount - 1
	}
	s.apply(i)
}

// Inspect routes a tapped particle kind to the panel as contextual text.
// Only the intro scene reacts; other scenes keep their fixed lesson text.
func (s *Sequencer) Inspect(k atom.Kind) {
	if !s.placed || s.index != SceneIntro {
		return
	}
	if text, ok := s.content.Inspect[k.String()]; ok {
		s.panel.SetLesson(s.content.Scenes[SceneIntro].Title, text)
	}
}

// Reset returns the sequencer to its pre-placement state. Called on session
// end.
func (s *Sequencer) Reset() {
	s.index = 0
	s.placed = false
	s.panel.ShowNav(false)
	s.panel.ShowQuiz(false)
	s.panel.ShowLesson(false)
}

// apply performs a transition: clear any highlight, restore opacity, stop the
// emphasis pulse and hide the quiz, then install the entering scene's
// effects.
func (s *Sequencer) apply(i int) {
	s.index = i
	s.model.ClearHighlights()
	s.model.ClearEmphasis()
	s.model.SuppressShells(false)
	s.panel.ShowQuiz(false)
	s.panel.ShowLesson(true)
	text := s.content.Scenes[i]
	s.panel.SetLesson(text.Title, text.Body)

	switch i {
	case SceneProtons:
		s.model.HighlightKind(atom.Proton)
		s.model.SetEmphasis(atom.Proton)
		s.model.SuppressShells(true)
	case SceneNeutrons:
		s.model.HighlightKind(atom.Neutron)
		s.model.SetEmphasis(atom.Neutron)
		s.model.SuppressShells(true)
	case SceneElectrons:
		s.model.HighlightKind(atom.Electron)
	case SceneQuiz:
		s.panel.ShowLesson(false)
		s.panel.ShowQuiz(true)
		s.quiz.Reset()
	}
}
