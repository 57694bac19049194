package lesson

import (
	"testing"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
)

// mockModel records sequencer calls against the particle model.
type mockModel struct {
	highlights []atom.Kind
	clears     int
	emphasis   []atom.Kind
	emphClears int
	suppressed bool
}

func (m *mockModel) HighlightKind(k atom.Kind) { m.highlights = append(m.highlights, k) }
func (m *mockModel) ClearHighlights()          { m.clears++ }
func (m *mockModel) SetEmphasis(k atom.Kind)   { m.emphasis = append(m.emphasis, k) }
func (m *mockModel) ClearEmphasis()            { m.emphClears++ }
func (m *mockModel) SuppressShells(s bool)     { m.suppressed = s }

// mockPanel records overlay mutations.
type mockPanel struct {
	title, body       string
	setCalls          int
	lesson, quiz, nav bool
}

func (p *mockPanel) SetLesson(title, body string) { p.title, p.body = title, body; p.setCalls++ }
func (p *mockPanel) ShowLesson(v bool)            { p.lesson = v }
func (p *mockPanel) ShowQuiz(v bool)              { p.quiz = v }
func (p *mockPanel) ShowNav(v bool)               { p.nav = v }

type mockQuiz struct{ resets int }

func (q *mockQuiz) Reset() { q.resets++ }

func newSequencerForTest() (*Sequencer, *mockModel, *mockPanel, *mockQuiz) {
	m := &mockModel{}
	p := &mockPanel{}
	q := &mockQuiz{}
	return NewSequencer(m, p, q, DefaultContent()), m, p, q
}

// Any navigation before placement must be a total no-op: index unchanged
// and no panel mutation.
func TestNavigationBeforePlacementIsNoOp(t *testing.T) {
	s, m, p, _ := newSequencerForTest()
	s.GoTo(3)
	s.Next()
	s.Prev()
	if s.Index() != 0 {
		t.Errorf("index: got %d, want 0", s.Index())
	}
	if p.setCalls != 0 || p.lesson || p.quiz || p.nav {
		t.Error("panel mutated before placement")
	}
	if len(m.highlights) != 0 || m.clears != 0 {
		t.Error("model mutated before placement")
	}
}

func TestNotifyPlacedEntersIntro(t *testing.T) {
	s, _, p, _ := newSequencerForTest()
	s.NotifyPlaced()
	if !s.Placed() || s.Index() != SceneIntro {
		t.Fatalf("after placement: placed=%v index=%d", s.Placed(), s.Index())
	}
	if !p.nav {
		t.Error("navigation controls not revealed")
	}
	if !p.lesson || p.title == "" {
		t.Error("intro panel not shown")
	}
	// Re-placement notifications must not restart the sequence.
	s.GoTo(2)
	s.NotifyPlaced()
	if s.Index() != 2 {
		t.Errorf("duplicate NotifyPlaced moved the scene to %d", s.Index())
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	s, _, _, _ := newSequencerForTest()
	s.NotifyPlaced()
	s.Prev()
	if s.Index() != 0 {
		t.Errorf("Prev at scene 0: got %d, want 0", s.Index())
	}
	for i := 0; i < 10; i++ {
		s.Next()
	}
	if s.Index() != SceneCount-1 {
		t.Errorf("Next past the end: got %d, want %d", s.Index(), SceneCount-1)
	}
	s.Next()
	if s.Index() != SceneCount-1 {
		t.Errorf("Next at last scene: got %d, want %d", s.Index(), SceneCount-1)
	}
}

// Against the real model: entering the proton scene highlights
// protons, dims everything else, and suppresses the glow shells.
func TestProtonSceneEffectsOnRealModel(t *testing.T) {
	a := atom.New()
	p := &mockPanel{}
	s := NewSequencer(a, p, &mockQuiz{}, DefaultContent())
	s.NotifyPlaced()
	s.GoTo(SceneProtons)

	if k, on := a.HighlightedKind(); !on || k != atom.Proton {
		t.Fatalf("highlight: got %v on=%v, want proton", k, on)
	}
	for _, n := range a.Nucleons {
		if n.Kind == atom.Proton {
			if n.Mat.Opacity != 1 {
				t.Errorf("proton opacity %v, want 1", n.Mat.Opacity)
			}
			if a.EmphasisScale(n) <= 1 {
				t.Error("proton not emphasized")
			}
		} else if n.Mat.Opacity >= 1 {
			t.Errorf("neutron not dimmed: opacity %v", n.Mat.Opacity)
		}
	}
	for _, e := range a.Electrons {
		if e.Mat.Opacity >= 1 {
			t.Errorf("electron not dimmed: opacity %v", e.Mat.Opacity)
		}
	}
	if !a.ShellsSuppressed() {
		t.Error("glow shells not suppressed in proton scene")
	}

	// Leaving the scene restores everything.
	s.GoTo(SceneIntro)
	if _, on := a.HighlightedKind(); on {
		t.Error("highlight survived transition")
	}
	if a.ShellsSuppressed() {
		t.Error("shell suppression survived transition")
	}
}

func TestEveryTransitionResetsVisualState(t *testing.T) {
	s, m, p, _ := newSequencerForTest()
	s.NotifyPlaced()
	clears := m.clears
	emphClears := m.emphClears
	s.GoTo(SceneElectrons)
	if m.clears != clears+1 || m.emphClears != emphClears+1 {
		t.Error("transition did not clear highlight and emphasis")
	}
	if m.suppressed {
		t.Error("electron scene should not suppress shells")
	}
	if len(m.highlights) == 0 || m.highlights[len(m.highlights)-1] != atom.Electron {
		t.Errorf("highlights: got %v", m.highlights)
	}
	if p.quiz {
		t.Error("quiz overlay visible outside the quiz scene")
	}
}

func TestQuizSceneShowsOverlayAndResets(t *testing.T) {
	s, _, p, q := newSequencerForTest()
	s.NotifyPlaced()
	s.GoTo(SceneQuiz)
	if !p.quiz {
		t.Error("quiz overlay not shown")
	}
	if p.lesson {
		t.Error("lesson panel still visible in quiz scene")
	}
	if q.resets != 1 {
		t.Errorf("quiz resets: got %d, want 1", q.resets)
	}
	// Re-entering the quiz scene resets again.
	s.Prev()
	s.Next()
	if q.resets != 2 {
		t.Errorf("quiz resets after re-entry: got %d, want 2", q.resets)
	}
}

func TestInspectOnlyInIntroScene(t *testing.T) {
	s, _, p, _ := newSequencerForTest()
	s.Inspect(atom.Proton) // before placement: no-op
	if p.setCalls != 0 {
		t.Fatal("inspect mutated panel before placement")
	}
	s.NotifyPlaced()
	body := p.body
	s.Inspect(atom.Proton)
	if p.body == body {
		t.Error("inspect did not update contextual text in intro scene")
	}
	s.GoTo(SceneElectrons)
	body = p.body
	s.Inspect(atom.Proton)
	if p.body != body {
		t.Error("inspect changed panel text outside the intro scene")
	}
}

func TestResetReturnsToPrePlacement(t *testing.T) {
	s, _, p, _ := newSequencerForTest()
	s.NotifyPlaced()
	s.GoTo(SceneQuiz)
	s.Reset()
	if s.Placed() || s.Index() != 0 {
		t.Errorf("after Reset: placed=%v index=%d", s.Placed(), s.Index())
	}
	if p.nav || p.quiz || p.lesson {
		t.Error("overlays still visible after Reset")
	}
	s.GoTo(3)
	if s.Index() != 0 {
		t.Error("navigation guard not restored after Reset")
	}
}

func TestDefaultContentComplete(t *testing.T) {
	c := DefaultContent()
	if len(c.Scenes) != SceneCount {
		t.Fatalf("scenes: got %d, want %d", len(c.Scenes), SceneCount)
	}
	for i, sc := range c.Scenes {
		if sc.Title == "" || sc.Body == "" {
			t.Errorf("scene %d has empty text", i)
		}
	}
	for _, k := range []atom.Kind{atom.Proton, atom.Neutron, atom.Electron} {
		if c.Inspect[k.String()] == "" {
			t.Errorf("missing inspect text for %s", k)
		}
	}
}

func TestLoadContentFallsBackToEmbedded(t *testing.T) {
	c, err := LoadContent("does/not/exist.yaml")
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if len(c.Scenes) != SceneCount {
		t.Errorf("fallback scenes: got %d", len(c.Scenes))
	}
}
