package model

import "math"

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (PDF coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// VerticalGap returns the vertical distance between two boxes, or 0 if they
// overlap vertically. Order of arguments does not matter.
func (b BBox) VerticalGap(other BBox) float64 {
	if b.Bottom() > other.Top() {
		return b.Bottom() - other.Top()
	}
	if other.Bottom() > b.Top() {
		return other.Bottom() - b.Top()
	}
	return 0
}
