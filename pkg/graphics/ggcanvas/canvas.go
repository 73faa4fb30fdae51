// Package ggcanvas implements graphics.Canvas on top of a gogpu/gg drawing
// context, so the widget paint pass can rasterize into a pixmap.
package ggcanvas

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/arbor/pkg/graphics"
)

// defaultMaxSaveDepth bounds the gg state stack.
const defaultMaxSaveDepth = 256

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used for backend diagnostics.
// Pass nil to fall back to slog.Default().
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithMaxSaveDepth overrides the maximum number of outstanding saves.
func WithMaxSaveDepth(depth int) Option {
	return func(c *Canvas) {
		c.maxDepth = depth
	}
}

// WithFontFace sets the face used by DrawText.
func WithFontFace(face text.Face) Option {
	return func(c *Canvas) {
		c.dc.SetFont(face)
	}
}

// Canvas adapts *gg.Context to graphics.Canvas.
//
// gg's Pop silently ignores an empty stack, so the adapter tracks depth
// itself and reports underflow as graphics.ErrRestoreUnderflow.
type Canvas struct {
	dc       *gg.Context
	depth    int
	maxDepth int
}

var _ graphics.Canvas = (*Canvas)(nil)

// New creates a software-rendered canvas of the given pixel size.
func New(width, height int, opts ...Option) *Canvas {
	return Wrap(gg.NewContext(width, height), opts...)
}

// Wrap adapts an existing gg context.
func Wrap(dc *gg.Context, opts ...Option) *Canvas {
	c := &Canvas{dc: dc, maxDepth: defaultMaxSaveDepth}
	if face, err := defaultFace(); err == nil {
		dc.SetFont(face)
	} else {
		logger().Warn("ggcanvas: default font unavailable", "error", err)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultFace() (text.Face, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load goregular: %w", err)
	}
	return source.Face(13), nil
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// EncodePNG writes the current pixmap as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) Save() error {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return graphics.ErrSaveDepthExceeded
	}
	c.dc.Push()
	c.depth++
	return nil
}

func (c *Canvas) Restore() error {
	if c.depth == 0 {
		return graphics.ErrRestoreUnderflow
	}
	c.dc.Pop()
	c.depth--
	return nil
}

func (c *Canvas) Transform(affine graphics.Affine) {
	c.dc.Transform(toMatrix(affine))
}

func (c *Canvas) SetTransform(affine graphics.Affine) {
	c.dc.SetTransform(toMatrix(affine))
}

func (c *Canvas) CurrentTransform() graphics.Affine {
	m := c.dc.GetTransform()
	return graphics.Affine{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.dc.ClipRect(rect.Left, rect.Top, rect.Width(), rect.Height())
}

func (c *Canvas) Clear(color graphics.Color) {
	c.dc.ClearWithColor(toRGBA(color))
}

func (c *Canvas) FillRect(rect graphics.Rect, color graphics.Color) {
	c.dc.SetColor(toRGBA(color).Color())
	c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	if err := c.dc.Fill(); err != nil {
		logger().Error("ggcanvas: fill failed", "error", err)
	}
}

func (c *Canvas) StrokeRect(rect graphics.Rect, color graphics.Color, width float64) {
	c.dc.SetColor(toRGBA(color).Color())
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	if err := c.dc.Stroke(); err != nil {
		logger().Error("ggcanvas: stroke failed", "error", err)
	}
}

func (c *Canvas) DrawLine(start, end graphics.Offset, color graphics.Color, width float64) {
	c.dc.SetColor(toRGBA(color).Color())
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	if err := c.dc.Stroke(); err != nil {
		logger().Error("ggcanvas: stroke failed", "error", err)
	}
}

// DrawText draws each line of the layout. gg positions text by baseline.
func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil {
		return
	}
	c.dc.SetColor(toRGBA(layout.Color).Color())
	for i, line := range layout.Lines {
		baseline := position.Y + layout.Ascent + float64(i)*layout.LineHeight
		c.dc.DrawString(line, position.X, baseline)
	}
}

func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.dc.Width()), Height: float64(c.dc.Height())}
}

func toMatrix(a graphics.Affine) gg.Matrix {
	return gg.Matrix{A: a.A, B: a.B, C: a.C, D: a.D, E: a.E, F: a.F}
}

func toRGBA(color graphics.Color) gg.RGBA {
	r, g, b, a := color.RGBAF()
	return gg.RGBA2(r, g, b, a)
}
