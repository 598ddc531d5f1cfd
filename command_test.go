package nkgg

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdNop, "Nop"},
		{CmdScissor, "Scissor"},
		{CmdLine, "Line"},
		{CmdRect, "Rect"},
		{CmdRectFilled, "RectFilled"},
		{CmdRectMultiColor, "RectMultiColor"},
		{CmdCircle, "Circle"},
		{CmdCircleFilled, "CircleFilled"},
		{CmdArc, "Arc"},
		{CmdArcFilled, "ArcFilled"},
		{CmdTriangle, "Triangle"},
		{CmdTriangleFilled, "TriangleFilled"},
		{CmdPolygon, "Polygon"},
		{CmdPolygonFilled, "PolygonFilled"},
		{CmdPolyline, "Polyline"},
		{CmdCurve, "Curve"},
		{CmdText, "Text"},
		{CmdImage, "Image"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestCommandTypeStringUnknown(t *testing.T) {
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("expected Unknown for out-of-range type, got %q", got)
	}
}

func TestCommandTypeTags(t *testing.T) {
	tests := []struct {
		cmd  Command
		want CommandType
	}{
		{NopCommand{}, CmdNop},
		{ScissorCommand{}, CmdScissor},
		{LineCommand{}, CmdLine},
		{RectCommand{}, CmdRect},
		{RectFilledCommand{}, CmdRectFilled},
		{RectMultiColorCommand{}, CmdRectMultiColor},
		{CircleCommand{}, CmdCircle},
		{CircleFilledCommand{}, CmdCircleFilled},
		{ArcCommand{}, CmdArc},
		{ArcFilledCommand{}, CmdArcFilled},
		{TriangleCommand{}, CmdTriangle},
		{TriangleFilledCommand{}, CmdTriangleFilled},
		{PolygonCommand{}, CmdPolygon},
		{PolygonFilledCommand{}, CmdPolygonFilled},
		{PolylineCommand{}, CmdPolyline},
		{CurveCommand{}, CmdCurve},
		{TextCommand{}, CmdText},
		{ImageCommand{}, CmdImage},
	}

	for _, tt := range tests {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestColorNormalized(t *testing.T) {
	tests := []struct {
		name       string
		col        Color
		r, g, b, a float64
	}{
		{"opaque white", Color{255, 255, 255, 255}, 1, 1, 1, 1},
		{"transparent black", Color{0, 0, 0, 0}, 0, 0, 0, 0},
		{"mid gray", Color{51, 102, 153, 204}, 0.2, 0.4, 0.6, 0.8},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.col.Normalized()
			if abs(r-tt.r) > eps || abs(g-tt.g) > eps || abs(b-tt.b) > eps || abs(a-tt.a) > eps {
				t.Errorf("Normalized() = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
