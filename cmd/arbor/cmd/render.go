package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-drift/arbor/pkg/config"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/graphics/ggcanvas"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
	"github.com/go-drift/arbor/pkg/window"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the widget gallery to PNG",
		Long: `Render the widget gallery to a PNG file.

The gallery is connected to a headless window sized from arbor.yaml,
optionally clicked and hovered, and painted with the software rasterizer.

Flags:
  -o FILE        Output path (default: gallery.png)
  --clicks N     Click the increment button N times before painting
  --hover        Hover the increment button until its tooltip shows
  --menu         Right-click the hint label and log the context menu`,
		Usage: "arbor render [-o FILE] [--clicks N] [--hover] [--menu]",
		Run:   runRender,
	})
}

type renderOptions struct {
	output string
	clicks int
	hover  bool
	menu   bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{output: "gallery.png"}

	output, args, err := flagValue(args, "-o")
	if err != nil {
		return opts, err
	}
	if output != "" {
		opts.output = output
	}

	clicks, args, err := flagValue(args, "--clicks")
	if err != nil {
		return opts, err
	}
	if clicks != "" {
		n, err := strconv.Atoi(clicks)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("--clicks must be a non-negative integer, got %q", clicks)
		}
		opts.clicks = n
	}

	for _, arg := range args {
		switch arg {
		case "--hover":
			opts.hover = true
		case "--menu":
			opts.menu = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := installLogger(cfg)

	clock := shell.NewFakeClock()
	handle := shell.NewHeadless(shell.WithClock(clock))
	g := newGallery()
	w := window.New(handle, widget.Widget[galleryData](g.root), galleryData{},
		window.WithSize(cfg.WindowSize),
		window.WithPolicy(cfg.Policy()),
		window.WithClock(clock),
	)
	w.Connect()
	// Hit testing needs geometry.
	w.Paint(graphics.NewRecorder(cfg.WindowSize))

	simulate(w, g, clock, opts)
	for _, tc := range w.ProcessCommands() {
		logger.Info("command left for the host", "selector", tc.Command.Selector, "target", tc.Target.Kind)
	}
	if menu, ok := w.TakeContextMenu(); ok {
		logger.Info("context menu requested", "title", menu.Menu.Title, "items", len(menu.Menu.Items), "x", menu.Location.X, "y", menu.Location.Y)
	}

	canvas := ggcanvas.New(int(cfg.WindowSize.Width), int(cfg.WindowSize.Height))
	defer canvas.Close()
	w.Layout()
	painted := w.Paint(canvas)
	logger.Debug("painted", "region", painted.Rect())

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Rendered %q (%gx%g, %d clicks) to %s\n",
		cfg.WindowTitle, cfg.WindowSize.Width, cfg.WindowSize.Height, w.Data().Clicks, opts.output)
	return nil
}

// simulate feeds the gallery the pointer input requested on the command
// line. Hovering runs last so the tooltip is still up when painting.
func simulate(w *window.Window[galleryData], g *gallery, clock *shell.FakeClock, opts renderOptions) {
	center := g.incrementCenter()
	for range opts.clicks {
		pointer(w, center, widget.MouseLeft)
	}
	if opts.menu {
		hint := g.hintCenter()
		w.Event(widget.EventMouseMove{MouseEvent: widget.MouseEvent{Pos: hint, WindowPos: hint}})
		w.Event(widget.EventMouseDown{MouseEvent: widget.MouseEvent{Pos: hint, WindowPos: hint, Button: widget.MouseRight, Count: 1}})
		w.Event(widget.EventMouseUp{MouseEvent: widget.MouseEvent{Pos: hint, WindowPos: hint, Button: widget.MouseRight, Count: 1}})
	}
	if opts.hover {
		w.Event(widget.EventMouseMove{MouseEvent: widget.MouseEvent{Pos: center, WindowPos: center}})
		clock.Advance(widgets.DefaultTooltipDelay)
		w.FireTimers()
	}
}

func pointer(w *window.Window[galleryData], pos graphics.Offset, button widget.MouseButton) {
	ev := widget.MouseEvent{Pos: pos, WindowPos: pos, Button: button, Count: 1}
	w.Event(widget.EventMouseMove{MouseEvent: widget.MouseEvent{Pos: pos, WindowPos: pos}})
	w.Event(widget.EventMouseDown{MouseEvent: ev})
	w.Event(widget.EventMouseUp{MouseEvent: ev})
}

func loadConfig() (*config.Resolved, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := config.FindRoot(cwd)
	if err != nil {
		root = cwd
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// installLogger routes every package logger through the configured level.
func installLogger(cfg *config.Resolved) *slog.Logger {
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	widget.SetLogger(logger)
	window.SetLogger(logger)
	ggcanvas.SetLogger(logger)
	return logger
}
