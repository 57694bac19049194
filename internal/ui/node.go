package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single overlay element: panel, label or button. Class and ID
// drive CSS matching; Bounds may come from the stylesheet or be laid out in
// code by the owning component. Buttons take part in click hit-testing.
type Node struct {
	Type    string // "panel", "label", "button"
	Class   string // e.g. "panel" for .panel
	ID      string // e.g. "nav-next" for #nav-next
	Bounds  rl.Rectangle
	Text    string
	Visible bool
}

// NewNode creates a visible node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:    typ,
		Class:   class,
		ID:      id,
		Text:    text,
		Visible: true,
	}
}

// Contains reports whether a screen point lies inside the node's bounds.
func (n *Node) Contains(x, y float32) bool {
	return x >= n.Bounds.X && x <= n.Bounds.X+n.Bounds.Width &&
		y >= n.Bounds.Y && y <= n.Bounds.Y+n.Bounds.Height
}
