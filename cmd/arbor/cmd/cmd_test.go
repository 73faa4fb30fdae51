package cmd

import (
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/window"
)

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{"defaults", nil, renderOptions{output: "gallery.png"}, false},
		{"output", []string{"-o", "out/x.png"}, renderOptions{output: "out/x.png"}, false},
		{"output equals", []string{"-o=x.png", "--hover"}, renderOptions{output: "x.png", hover: true}, false},
		{"clicks", []string{"--clicks", "3", "--menu"}, renderOptions{output: "gallery.png", clicks: 3, menu: true}, false},
		{"negative clicks", []string{"--clicks", "-1"}, renderOptions{}, true},
		{"missing value", []string{"--clicks"}, renderOptions{}, true},
		{"unknown flag", []string{"--fast"}, renderOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("options = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	if err := Execute([]string{"paint-everything"}); err == nil {
		t.Error("expected an error for an unknown command")
	}
	if _, ok := commands["render"]; !ok {
		t.Error("render command not registered")
	}
}

func TestGallerySimulation(t *testing.T) {
	size := graphics.Size{Width: 320, Height: 200}
	clock := shell.NewFakeClock()
	handle := shell.NewHeadless(shell.WithClock(clock))
	g := newGallery()
	w := window.New(handle, widget.Widget[galleryData](g.root), galleryData{},
		window.WithSize(size), window.WithClock(clock))
	w.Connect()
	w.Paint(graphics.NewRecorder(size))

	simulate(w, g, clock, renderOptions{clicks: 2, hover: true, menu: true})

	if got := w.Data().Clicks; got != 2 {
		t.Errorf("Clicks = %d, want 2", got)
	}
	// The tooltip pod wraps the button, so focus lands one level down.
	if !g.increment.State().HasChild(w.Focus()) {
		t.Errorf("Focus = %v, want the increment button", w.Focus())
	}
	if rest := w.ProcessCommands(); len(rest) != 0 {
		t.Errorf("ProcessCommands left %d commands", len(rest))
	}
	menu, ok := w.TakeContextMenu()
	if !ok {
		t.Fatal("no context menu after right-click")
	}
	if !g.tooltip().Visible() {
		t.Error("tooltip not visible after hovering")
	}
	if menu.Menu.Title != "Counter" || menu.Menu.Items[0].Disabled {
		t.Errorf("menu = %+v, want an enabled Counter menu", menu.Menu)
	}
}
