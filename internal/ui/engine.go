package ui

import (
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{sheet: nil, nodes: nil}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.sheet = sheet
	e.cacheValid = false
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists (e.g. after first frame or in draw).
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded UI font (zero texture ID when none), so other text
// surfaces can share it.
func (e *Engine) Font() rl.Font {
	return e.font
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Invalidate forces style re-resolution on the next Draw. Call after changing
// a node's Class or ID in place.
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// NodeByID returns the first node with the given ID, or nil.
func (e *Engine) NodeByID(id string) *Node {
	for _, n := range e.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// HitButton returns the ID of the topmost visible button node containing the
// point, or "" when no button is under it. Later nodes draw on top, so the
// scan runs back to front.
func (e *Engine) HitButton(x, y float32) string {
	e.resolve()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if !n.Visible || n.Type != "button" {
			continue
		}
		bx, by, w, h := e.placed(i, n, screenW, screenH)
		if x >= float32(bx) && x < float32(bx+w) && y >= float32(by) && y < float32(by+h) {
			return n.ID
		}
	}
	return ""
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
// Class may hold several space-separated classes.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		if len(sel) > 0 && sel[0] == '.' {
			class := sel[1:]
			for _, c := range strings.Fields(n.Class) {
				if c == class {
					matches = true
					break
				}
			}
		} else if len(sel) > 0 && sel[0] == '#' {
			if n.ID == sel[1:] {
				matches = true
			}
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// resolveBounds sets n.Bounds from style (left, top, width, height). Values
// the stylesheet does not set leave the code-assigned Bounds alone.
func resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	if style.HasLeft {
		n.Bounds.X = float32(style.Left)
	}
	if style.HasTop {
		n.Bounds.Y = float32(style.Top)
	}
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		props := e.resolveProps(n)
		e.cachedStyles[i] = ResolveProps(props)
		resolveBounds(n, e.cachedStyles[i])
	}
	e.cacheValid = true
}

// placed returns a node's final screen rectangle after percentage positioning.
func (e *Engine) placed(i int, n *Node, screenW, screenH int32) (x, y, w, h int32) {
	style := e.cachedStyles[i]
	w = int32(n.Bounds.Width)
	h = int32(n.Bounds.Height)
	x = int32(n.Bounds.X)
	y = int32(n.Bounds.Y)
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	return x, y, w, h
}

// Draw draws all visible nodes: for each node, resolve style (cached), update
// bounds from style, then draw background, border, and text. Text with
// newlines renders line by line.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	e.resolve()
	for i, n := range e.nodes {
		if !n.Visible {
			continue
		}
		style := e.cachedStyles[i]
		x, y, w, h := e.placed(i, n, screenW, screenH)

		// Background
		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		// Border (1px)
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		// Text (for label-type or any node with text)
		if n.Text != "" {
			pad := style.Padding
			if pad <= 0 {
				pad = 4
			}
			size := style.FontSize
			if size <= 0 {
				size = defaultFontSize
			}
			textX := x + pad
			textY := y + pad
			for _, line := range strings.Split(n.Text, "\n") {
				if e.font.Texture.ID != 0 {
					rl.DrawTextEx(e.font, line, rl.NewVector2(float32(textX), float32(textY)), float32(size), 1, style.Color)
				} else {
					rl.DrawText(line, textX, textY, size, style.Color)
				}
				textY += size + 2
			}
		}
	}
}

// HasStylesheet returns whether a CSS file has been loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
