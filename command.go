package nkgg

import "image"

// CommandType identifies the kind of a draw command.
// The set is closed: toolkits emit only these kinds, and the renderer
// dispatches on the type tag.
type CommandType uint8

const (
	// CmdNop does nothing. Toolkits emit it as a placeholder.
	CmdNop CommandType = iota

	// CmdScissor replaces the active clip rectangle.
	CmdScissor

	// Stroked and filled primitives.
	CmdLine
	CmdRect
	CmdRectFilled
	CmdRectMultiColor
	CmdCircle
	CmdCircleFilled
	CmdArc
	CmdArcFilled
	CmdTriangle
	CmdTriangleFilled
	CmdPolygon
	CmdPolygonFilled
	CmdPolyline
	CmdCurve

	// Content commands.
	CmdText
	CmdImage
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdNop:            "Nop",
	CmdScissor:        "Scissor",
	CmdLine:           "Line",
	CmdRect:           "Rect",
	CmdRectFilled:     "RectFilled",
	CmdRectMultiColor: "RectMultiColor",
	CmdCircle:         "Circle",
	CmdCircleFilled:   "CircleFilled",
	CmdArc:            "Arc",
	CmdArcFilled:      "ArcFilled",
	CmdTriangle:       "Triangle",
	CmdTriangleFilled: "TriangleFilled",
	CmdPolygon:        "Polygon",
	CmdPolygonFilled:  "PolygonFilled",
	CmdPolyline:       "Polyline",
	CmdCurve:          "Curve",
	CmdText:           "Text",
	CmdImage:          "Image",
}

// String returns the string representation of a CommandType.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is the interface implemented by all draw command types.
// Commands are immutable once appended to a CommandList.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Color is an 8-bit-per-channel RGBA color as toolkits carry it.
// Components are converted to normalized floats at the drawing-library
// boundary.
type Color struct {
	R, G, B, A uint8
}

// Normalized returns the color components scaled to the [0, 1] range.
func (c Color) Normalized() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// NopCommand does nothing.
type NopCommand struct{}

// Type implements Command.
func (NopCommand) Type() CommandType { return CmdNop }

// ScissorCommand replaces the active clip rectangle. All subsequent
// commands are restricted to it until the next scissor or end of list.
type ScissorCommand struct {
	X, Y, W, H int
}

// Type implements Command.
func (ScissorCommand) Type() CommandType { return CmdScissor }

// LineCommand strokes a straight segment.
type LineCommand struct {
	X0, Y0    int
	X1, Y1    int
	Thickness int
	Color     Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// RectCommand strokes an axis-aligned rectangle. A positive Rounding is
// realized as four quarter-circle corner arcs joined by straight edges.
type RectCommand struct {
	X, Y, W, H int
	Rounding   int
	Thickness  int
	Color      Color
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// RectFilledCommand fills an axis-aligned rectangle, optionally with
// rounded corners.
type RectFilledCommand struct {
	X, Y, W, H int
	Rounding   int
	Color      Color
}

// Type implements Command.
func (RectFilledCommand) Type() CommandType { return CmdRectFilled }

// RectMultiColorCommand fills a rectangle with a per-corner color
// gradient. The renderer does not support it and skips it with a
// diagnostic.
type RectMultiColorCommand struct {
	X, Y, W, H int
	Left       Color
	Top        Color
	Right      Color
	Bottom     Color
}

// Type implements Command.
func (RectMultiColorCommand) Type() CommandType { return CmdRectMultiColor }

// CircleCommand strokes the largest circle inscribed in the bounding box:
// radius is half the smaller of W and H, centered accordingly.
type CircleCommand struct {
	X, Y, W, H int
	Thickness  int
	Color      Color
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// CircleFilledCommand fills the largest circle inscribed in the bounding box.
type CircleFilledCommand struct {
	X, Y, W, H int
	Color      Color
}

// Type implements Command.
func (CircleFilledCommand) Type() CommandType { return CmdCircleFilled }

// ArcCommand strokes a circular arc between two angles in radians,
// closed back to its starting point before stroking.
type ArcCommand struct {
	CX, CY    int
	R         int
	A0, A1    float64
	Thickness int
	Color     Color
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ArcFilledCommand fills a closed circular arc between two angles in radians.
type ArcFilledCommand struct {
	CX, CY int
	R      int
	A0, A1 float64
	Color  Color
}

// Type implements Command.
func (ArcFilledCommand) Type() CommandType { return CmdArcFilled }

// TriangleCommand strokes a triangle, closed back to the first vertex.
type TriangleCommand struct {
	A, B, C   Point
	Thickness int
	Color     Color
}

// Type implements Command.
func (TriangleCommand) Type() CommandType { return CmdTriangle }

// TriangleFilledCommand fills a triangle.
type TriangleFilledCommand struct {
	A, B, C Point
	Color   Color
}

// Type implements Command.
func (TriangleFilledCommand) Type() CommandType { return CmdTriangleFilled }

// PolygonCommand strokes an ordered point sequence, closed back to the
// first point.
type PolygonCommand struct {
	Points    []Point
	Thickness int
	Color     Color
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// PolygonFilledCommand fills an ordered point sequence, closed back to
// the first point.
type PolygonFilledCommand struct {
	Points []Point
	Color  Color
}

// Type implements Command.
func (PolygonFilledCommand) Type() CommandType { return CmdPolygonFilled }

// PolylineCommand strokes an ordered point sequence without closing it.
type PolylineCommand struct {
	Points    []Point
	Thickness int
	Color     Color
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// CurveCommand is a cubic curve segment. The renderer does not support it
// and skips it with a diagnostic.
type CurveCommand struct {
	Begin     Point
	End       Point
	Ctrl      [2]Point
	Thickness int
	Color     Color
}

// Type implements Command.
func (CurveCommand) Type() CommandType { return CmdCurve }

// TextCommand draws a text run inside the given box. The baseline is
// placed at Y plus the font's ascent. Text is drawn exactly as given;
// Go strings carry their byte length, so no separate length field exists.
type TextCommand struct {
	X, Y, W, H int
	Font       *Font
	Text       string
	// Height is the line height the toolkit declared for layout.
	// The renderer draws with the Font's own metrics; Height is carried
	// for toolkits that inspect their own lists.
	Height     float64
	Foreground Color
	// Background is carried from the toolkit but not painted; widget
	// backgrounds arrive as separate fill commands.
	Background Color
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// ImageCommand blits an image into the destination rectangle, scaling
// each axis independently. The source top-left corner maps onto the
// destination top-left corner regardless of aspect distortion.
type ImageCommand struct {
	X, Y, W, H int
	Img        image.Image
	// Tint is carried from the toolkit; the blit itself paints the image
	// unmodified.
	Tint Color
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }
