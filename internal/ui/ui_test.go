package ui

import (
	"strings"
	"testing"
)

func TestParseCSSCommaSelectors(t *testing.T) {
	sheet, err := ParseCSS(`
/* shared look */
.token, .slot {
    color: #fff;
}
#nav-next {
    width: 110px;
}
`)
	if err != nil {
		t.Fatalf("ParseCSS: %v", err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("rules = %d, want 3", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != ".token" || sheet.Rules[1].Selector != ".slot" {
		t.Errorf("comma list not expanded: %q, %q", sheet.Rules[0].Selector, sheet.Rules[1].Selector)
	}
	if sheet.Rules[2].Selector != "#nav-next" {
		t.Errorf("id selector = %q", sheet.Rules[2].Selector)
	}
}

func TestParseCSSSkipsInvalidSelectors(t *testing.T) {
	sheet, err := ParseCSS(`div { color: #fff; } .ok { color: #000; }`)
	if err != nil {
		t.Fatalf("ParseCSS: %v", err)
	}
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector != ".ok" {
		t.Fatalf("rules = %+v, want only .ok", sheet.Rules)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b uint8
		a       uint8
		ok      bool
	}{
		{"#fff", 255, 255, 255, 255, true},
		{"#102030", 16, 32, 48, 255, true},
		{"#10203080", 16, 32, 48, 128, true},
		{"red", 0, 0, 0, 0, false},
		{"#12345", 0, 0, 0, 0, false},
	}
	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		if ok != c.ok {
			t.Errorf("ParseHexColor(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && (got.R != c.r || got.G != c.g || got.B != c.b || got.A != c.a) {
			t.Errorf("ParseHexColor(%q) = %v", c.in, got)
		}
	}
}

func TestResolvePropsPositionFlags(t *testing.T) {
	style := ResolveProps(map[string]string{"width": "100px", "font-size": "24"})
	if style.HasLeft || style.HasTop {
		t.Error("position flags set without left/top properties")
	}
	if style.FontSize != 24 {
		t.Errorf("FontSize = %d, want 24", style.FontSize)
	}

	style = ResolveProps(map[string]string{"left": "12px", "top": "50%"})
	if !style.HasLeft || style.Left != 12 {
		t.Errorf("left = %d (has %v), want 12", style.Left, style.HasLeft)
	}
	if style.HasTop {
		t.Error("percentage top should not set the pixel flag")
	}
	if style.TopPct != 50 {
		t.Errorf("TopPct = %d, want 50", style.TopPct)
	}
}

func TestResolveBoundsKeepsCodeLayout(t *testing.T) {
	n := NewNode("button", "token", "token-0", "proton")
	n.Bounds.X = 200
	n.Bounds.Y = 150
	resolveBounds(n, ResolveProps(map[string]string{"width": "150px", "height": "48px"}))
	if n.Bounds.X != 200 || n.Bounds.Y != 150 {
		t.Errorf("code position clobbered: %.0f,%.0f", n.Bounds.X, n.Bounds.Y)
	}
	if n.Bounds.Width != 150 || n.Bounds.Height != 48 {
		t.Errorf("size not applied: %.0fx%.0f", n.Bounds.Width, n.Bounds.Height)
	}
}

func TestDefaultStylesheetParses(t *testing.T) {
	sheet := DefaultStylesheet()
	if len(sheet.Rules) == 0 {
		t.Fatal("embedded theme produced no rules")
	}
	for _, sel := range []string{".token", ".slot-correct", "#lesson-panel", "#error-panel"} {
		found := false
		for _, r := range sheet.Rules {
			if r.Selector == sel {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("theme missing %s", sel)
		}
	}
}

func TestOverlayVisibility(t *testing.T) {
	eng := New()
	ov := NewOverlay(eng, 1280, 720)

	if ov.lessonPanel.Visible || ov.quizPanel.Visible || ov.navNext.Visible {
		t.Error("panels should start hidden")
	}
	ov.ShowLesson(true)
	ov.ShowNav(true)
	if !ov.lessonPanel.Visible || !ov.lessonBody.Visible || !ov.navPrev.Visible {
		t.Error("ShowLesson/ShowNav did not reveal nodes")
	}
	ov.ShowQuiz(true)
	for i, n := range ov.tokens {
		if !n.Visible {
			t.Errorf("token %d hidden after ShowQuiz(true)", i)
		}
	}
}

func TestOverlayQuizClasses(t *testing.T) {
	eng := New()
	ov := NewOverlay(eng, 1280, 720)
	ov.SetQuiz(QuizView{
		Tokens: []QuizTokenView{
			{Label: "proton", Selected: true},
			{Label: "neutron"},
			{Label: "electron", Placed: true},
		},
		Slots: []QuizSlotView{
			{Label: "proton", Correct: true},
			{Label: "Carries no charge", Flashing: true},
			{Label: "Orbits the nucleus"},
		},
		Status: "Pick a card",
	})
	if ov.tokens[0].Class != "token token-selected" {
		t.Errorf("token 0 class = %q", ov.tokens[0].Class)
	}
	if ov.tokens[2].Class != "token token-placed" {
		t.Errorf("token 2 class = %q", ov.tokens[2].Class)
	}
	if ov.slots[0].Class != "slot slot-correct" || ov.slots[1].Class != "slot slot-flash" {
		t.Errorf("slot classes = %q, %q", ov.slots[0].Class, ov.slots[1].Class)
	}
	if ov.quizStatus.Text != "Pick a card" {
		t.Errorf("status = %q", ov.quizStatus.Text)
	}
}

func TestToastExpires(t *testing.T) {
	eng := New()
	ov := NewOverlay(eng, 1280, 720)
	ov.Toast("saved")
	if !ov.toast.Visible {
		t.Fatal("toast not shown")
	}
	ov.Update(1.0)
	if !ov.toast.Visible {
		t.Error("toast expired early")
	}
	ov.Update(2.0)
	if ov.toast.Visible {
		t.Error("toast still visible after timeout")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("protons carry a positive charge and sit in the nucleus", 20)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line %d too long: %q", i, line)
		}
	}
	if strings.ReplaceAll(got, "\n", " ") != "protons carry a positive charge and sit in the nucleus" {
		t.Errorf("words lost: %q", got)
	}
}
