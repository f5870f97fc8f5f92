// Package core provides fundamental types and utilities shared by the game
// engine and its front-ends. It contains no external dependencies (especially
// no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in logical (world) coordinates.
// (X1, Y1) is the top-left corner, (X2, Y2) the bottom-right corner.
type Box struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X1 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y1 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y2 }

// Width returns the horizontal extent.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// Overlaps returns true if the interiors of the two boxes intersect.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X2 > other.X1 && b.X1 < other.X2 &&
		b.Y2 > other.Y1 && b.Y1 < other.Y2
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// Rect represents a rectangle in screen cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
