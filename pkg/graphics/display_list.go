package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
// Save and Restore failures on the target are ignored during replay.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// DrawKind identifies a recorded drawing primitive.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawFillRect
	DrawStrokeRect
	DrawLineSegment
	DrawTextRun
)

// Draw describes one drawing primitive together with the transform that was
// current when it was issued.
type Draw struct {
	Kind      DrawKind
	Rect      Rect
	Color     Color
	Text      string
	Transform Affine
}

// Recorder is a Canvas that records drawing commands instead of rasterizing
// them. It tracks transform state so CurrentTransform is meaningful, and
// optionally limits save depth so callers can observe Save failures.
type Recorder struct {
	// MaxSaveDepth bounds the number of outstanding saves. Zero means no limit.
	MaxSaveDepth int

	ops       []displayOp
	draws     []Draw
	size      Size
	transform Affine
	stack     []Affine
}

// NewRecorder starts a recording session for a canvas of the given size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size, transform: IdentityAffine()}
}

// EndRecording returns the operations recorded so far as a display list.
func (r *Recorder) EndRecording() *DisplayList {
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

// Draws returns the drawing primitives recorded so far, in order.
func (r *Recorder) Draws() []Draw {
	out := make([]Draw, len(r.draws))
	copy(out, r.draws)
	return out
}

// SaveDepth returns the number of outstanding saves.
func (r *Recorder) SaveDepth() int {
	return len(r.stack)
}

func (r *Recorder) append(op displayOp) {
	r.ops = append(r.ops, op)
}

func (r *Recorder) draw(d Draw) {
	d.Transform = r.transform
	r.draws = append(r.draws, d)
}

func (r *Recorder) Save() error {
	if r.MaxSaveDepth > 0 && len(r.stack) >= r.MaxSaveDepth {
		return ErrSaveDepthExceeded
	}
	r.stack = append(r.stack, r.transform)
	r.append(opSave{})
	return nil
}

func (r *Recorder) Restore() error {
	if len(r.stack) == 0 {
		return ErrRestoreUnderflow
	}
	r.transform = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.append(opRestore{})
	return nil
}

func (r *Recorder) Transform(affine Affine) {
	r.transform = r.transform.Multiply(affine)
	r.append(opTransform{affine: affine})
}

func (r *Recorder) SetTransform(affine Affine) {
	r.transform = affine
	r.append(opSetTransform{affine: affine})
}

func (r *Recorder) CurrentTransform() Affine {
	return r.transform
}

func (r *Recorder) ClipRect(rect Rect) {
	r.append(opClipRect{rect: rect})
}

func (r *Recorder) Clear(color Color) {
	r.append(opClear{color: color})
	r.draw(Draw{Kind: DrawClear, Rect: r.size.ToRect(), Color: color})
}

func (r *Recorder) FillRect(rect Rect, color Color) {
	r.append(opFillRect{rect: rect, color: color})
	r.draw(Draw{Kind: DrawFillRect, Rect: rect, Color: color})
}

func (r *Recorder) StrokeRect(rect Rect, color Color, width float64) {
	r.append(opStrokeRect{rect: rect, color: color, width: width})
	r.draw(Draw{Kind: DrawStrokeRect, Rect: rect, Color: color})
}

func (r *Recorder) DrawLine(start, end Offset, color Color, width float64) {
	r.append(opLine{start: start, end: end, color: color, width: width})
	r.draw(Draw{Kind: DrawLineSegment, Rect: Rect{Left: start.X, Top: start.Y, Right: end.X, Bottom: end.Y}, Color: color})
}

func (r *Recorder) DrawText(layout *TextLayout, position Offset) {
	if layout == nil {
		return
	}
	r.append(opText{layout: layout, position: position})
	r.draw(Draw{Kind: DrawTextRun, Rect: RectFromOriginSize(position, layout.Size), Color: layout.Color, Text: layout.Text})
}

func (r *Recorder) Size() Size {
	return r.size
}

type displayOp interface {
	execute(canvas Canvas)
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	_ = canvas.Save()
}

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	_ = canvas.Restore()
}

type opTransform struct {
	affine Affine
}

func (op opTransform) execute(canvas Canvas) {
	canvas.Transform(op.affine)
}

type opSetTransform struct {
	affine Affine
}

func (op opSetTransform) execute(canvas Canvas) {
	canvas.SetTransform(op.affine)
}

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.rect)
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opFillRect struct {
	rect  Rect
	color Color
}

func (op opFillRect) execute(canvas Canvas) {
	canvas.FillRect(op.rect, op.color)
}

type opStrokeRect struct {
	rect  Rect
	color Color
	width float64
}

func (op opStrokeRect) execute(canvas Canvas) {
	canvas.StrokeRect(op.rect, op.color, op.width)
}

type opLine struct {
	start Offset
	end   Offset
	color Color
	width float64
}

func (op opLine) execute(canvas Canvas) {
	canvas.DrawLine(op.start, op.end, op.color, op.width)
}

type opText struct {
	layout   *TextLayout
	position Offset
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.layout, op.position)
}
