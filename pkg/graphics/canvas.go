package graphics

import stderrors "errors"

var (
	// ErrSaveDepthExceeded is returned by Save when the canvas cannot push
	// another state.
	ErrSaveDepthExceeded = stderrors.New("graphics: save depth exceeded")

	// ErrRestoreUnderflow is returned by Restore without a matching Save.
	ErrRestoreUnderflow = stderrors.New("graphics: restore without matching save")
)

// Canvas is the drawing capability handed to paint code.
//
// Save and Restore are fallible so that callers can log a backend failure
// without aborting a paint pass.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save() error

	// Restore pops the most recent transform and clip state.
	Restore() error

	// Transform concatenates the given transform onto the current one.
	Transform(affine Affine)

	// SetTransform replaces the current transform.
	SetTransform(affine Affine)

	// CurrentTransform returns the transform in effect.
	CurrentTransform() Affine

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// FillRect fills a rectangle.
	FillRect(rect Rect, color Color)

	// StrokeRect outlines a rectangle.
	StrokeRect(rect Rect, color Color, width float64)

	// DrawLine draws a line segment.
	DrawLine(start, end Offset, color Color, width float64)

	// DrawText draws a laid-out text run with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
