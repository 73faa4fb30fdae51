package graphics

import (
	stderrors "errors"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextLayout is a measured, ready-to-draw text run.
type TextLayout struct {
	Text       string
	Color      Color
	Size       Size
	Ascent     float64
	LineHeight float64
	Lines      []string
}

// TextFactory creates text layouts. Window handles hand one out so that
// widgets can measure text during layout and draw it during paint.
type TextFactory interface {
	NewTextLayout(text string, color Color) (*TextLayout, error)
}

// BasicTextFactory measures text with a fixed bitmap face. It does not
// shape or wrap; each newline starts a new line.
type BasicTextFactory struct {
	mu   sync.Mutex
	face font.Face
}

var (
	defaultTextFactory     *BasicTextFactory
	defaultTextFactoryOnce sync.Once
)

// DefaultTextFactory returns a shared factory backed by basicfont.Face7x13.
func DefaultTextFactory() *BasicTextFactory {
	defaultTextFactoryOnce.Do(func() {
		defaultTextFactory = NewBasicTextFactory(basicfont.Face7x13)
	})
	return defaultTextFactory
}

// NewBasicTextFactory returns a factory measuring with the given face.
func NewBasicTextFactory(face font.Face) *BasicTextFactory {
	return &BasicTextFactory{face: face}
}

// NewTextLayout measures text and returns its layout.
func (f *BasicTextFactory) NewTextLayout(text string, color Color) (*TextLayout, error) {
	if f == nil || f.face == nil {
		return nil, stderrors.New("text factory has no font face")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	metrics := f.face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight == 0 {
		lineHeight = ascent + fixedToFloat(metrics.Descent)
	}

	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		if w := fixedToFloat(font.MeasureString(f.face, line)); w > width {
			width = w
		}
	}
	return &TextLayout{
		Text:       text,
		Color:      color,
		Size:       Size{Width: width, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
