package ggcanvas

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
)

func TestSaveRestoreDepth(t *testing.T) {
	c := New(16, 16, WithMaxSaveDepth(1))
	defer c.Close()

	if err := c.Restore(); !errors.Is(err, graphics.ErrRestoreUnderflow) {
		t.Fatalf("Restore = %v, want ErrRestoreUnderflow", err)
	}
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	if err := c.Save(); !errors.Is(err, graphics.ErrSaveDepthExceeded) {
		t.Errorf("second Save = %v, want ErrSaveDepthExceeded", err)
	}

	shift := graphics.TranslateAffine(graphics.Offset{X: 4, Y: 2})
	c.Transform(shift)
	if got := c.CurrentTransform(); !got.ApproxEqual(shift) {
		t.Errorf("CurrentTransform = %v, want %v", got, shift)
	}
	if err := c.Restore(); err != nil {
		t.Fatal(err)
	}
	if got := c.CurrentTransform(); !got.ApproxEqual(graphics.IdentityAffine()) {
		t.Errorf("CurrentTransform after Restore = %v, want identity", got)
	}
}

func TestDrawAndEncode(t *testing.T) {
	c := New(8, 4)
	defer c.Close()

	if got := c.Size(); got != (graphics.Size{Width: 8, Height: 4}) {
		t.Errorf("Size = %v", got)
	}
	c.Clear(graphics.ColorWhite)
	c.FillRect(graphics.RectFromLTWH(0, 0, 4, 4), graphics.ColorRed)
	c.DrawText(nil, graphics.Offset{})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
