package nkgg

import (
	"image"
	"iter"
	"slices"
)

// CommandList is the ordered sequence of draw commands for one frame.
// The toolkit appends commands through the typed methods below while
// building its frame; Render replays them in order and then calls Reset
// so the next frame starts empty.
//
// A CommandList is not safe for concurrent use.
type CommandList struct {
	cmds []Command
}

// NewCommandList creates an empty command list.
func NewCommandList() *CommandList {
	return &CommandList{cmds: make([]Command, 0, 256)}
}

// Append adds a command to the end of the list.
func (l *CommandList) Append(cmd Command) {
	l.cmds = append(l.cmds, cmd)
}

// Len returns the number of commands in the list.
func (l *CommandList) Len() int {
	return len(l.cmds)
}

// At returns the i-th command. It panics if i is out of range.
func (l *CommandList) At(i int) Command {
	return l.cmds[i]
}

// Commands returns an iterator over the commands in append order.
func (l *CommandList) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, cmd := range l.cmds {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Reset clears the list, keeping the allocated capacity for the next
// frame. Render calls it after a frame has been consumed.
func (l *CommandList) Reset() {
	l.cmds = l.cmds[:0]
}

// PushScissor replaces the active clip rectangle for subsequent commands.
func (l *CommandList) PushScissor(x, y, w, h int) {
	l.Append(ScissorCommand{X: x, Y: y, W: w, H: h})
}

// StrokeLine strokes a straight segment.
func (l *CommandList) StrokeLine(x0, y0, x1, y1, thickness int, col Color) {
	l.Append(LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Thickness: thickness, Color: col})
}

// StrokeRect strokes a rectangle with the given corner rounding.
func (l *CommandList) StrokeRect(x, y, w, h, rounding, thickness int, col Color) {
	l.Append(RectCommand{X: x, Y: y, W: w, H: h, Rounding: rounding, Thickness: thickness, Color: col})
}

// FillRect fills a rectangle with the given corner rounding.
func (l *CommandList) FillRect(x, y, w, h, rounding int, col Color) {
	l.Append(RectFilledCommand{X: x, Y: y, W: w, H: h, Rounding: rounding, Color: col})
}

// FillRectMultiColor fills a rectangle with a per-corner gradient.
// The renderer currently skips this command with a diagnostic.
func (l *CommandList) FillRectMultiColor(x, y, w, h int, left, top, right, bottom Color) {
	l.Append(RectMultiColorCommand{X: x, Y: y, W: w, H: h, Left: left, Top: top, Right: right, Bottom: bottom})
}

// StrokeCircle strokes the largest circle inscribed in the bounding box.
func (l *CommandList) StrokeCircle(x, y, w, h, thickness int, col Color) {
	l.Append(CircleCommand{X: x, Y: y, W: w, H: h, Thickness: thickness, Color: col})
}

// FillCircle fills the largest circle inscribed in the bounding box.
func (l *CommandList) FillCircle(x, y, w, h int, col Color) {
	l.Append(CircleFilledCommand{X: x, Y: y, W: w, H: h, Color: col})
}

// StrokeArc strokes a closed circular arc between two angles in radians.
func (l *CommandList) StrokeArc(cx, cy, r int, a0, a1 float64, thickness int, col Color) {
	l.Append(ArcCommand{CX: cx, CY: cy, R: r, A0: a0, A1: a1, Thickness: thickness, Color: col})
}

// FillArc fills a closed circular arc between two angles in radians.
func (l *CommandList) FillArc(cx, cy, r int, a0, a1 float64, col Color) {
	l.Append(ArcFilledCommand{CX: cx, CY: cy, R: r, A0: a0, A1: a1, Color: col})
}

// StrokeTriangle strokes a triangle.
func (l *CommandList) StrokeTriangle(a, b, c Point, thickness int, col Color) {
	l.Append(TriangleCommand{A: a, B: b, C: c, Thickness: thickness, Color: col})
}

// FillTriangle fills a triangle.
func (l *CommandList) FillTriangle(a, b, c Point, col Color) {
	l.Append(TriangleFilledCommand{A: a, B: b, C: c, Color: col})
}

// StrokePolygon strokes an ordered point sequence, closed back to the
// first point. The points are copied; the caller may reuse the slice.
func (l *CommandList) StrokePolygon(pts []Point, thickness int, col Color) {
	l.Append(PolygonCommand{Points: slices.Clone(pts), Thickness: thickness, Color: col})
}

// FillPolygon fills an ordered point sequence, closed back to the first
// point. The points are copied; the caller may reuse the slice.
func (l *CommandList) FillPolygon(pts []Point, col Color) {
	l.Append(PolygonFilledCommand{Points: slices.Clone(pts), Color: col})
}

// StrokePolyline strokes an ordered point sequence without closing it.
// The points are copied; the caller may reuse the slice.
func (l *CommandList) StrokePolyline(pts []Point, thickness int, col Color) {
	l.Append(PolylineCommand{Points: slices.Clone(pts), Thickness: thickness, Color: col})
}

// StrokeCurve appends a cubic curve segment. The renderer currently
// skips this command with a diagnostic.
func (l *CommandList) StrokeCurve(begin, end Point, ctrl0, ctrl1 Point, thickness int, col Color) {
	l.Append(CurveCommand{Begin: begin, End: end, Ctrl: [2]Point{ctrl0, ctrl1}, Thickness: thickness, Color: col})
}

// DrawText draws a text run inside the given box using a Font obtained
// from a FontCache. The baseline is placed at y plus the font's ascent.
func (l *CommandList) DrawText(x, y, w, h int, font *Font, s string, fg Color) {
	var height float64
	if font != nil {
		height = font.Height()
	}
	l.Append(TextCommand{X: x, Y: y, W: w, H: h, Font: font, Text: s, Height: height, Foreground: fg})
}

// DrawImage blits an image into the destination rectangle, scaling each
// axis independently.
func (l *CommandList) DrawImage(x, y, w, h int, img image.Image, tint Color) {
	l.Append(ImageCommand{X: x, Y: y, W: w, H: h, Img: img, Tint: tint})
}
