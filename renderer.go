package nkgg

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Render replays a command list onto the caller's frame buffer.
//
// It binds a transient drawing context to the frame, establishes an
// initial clip covering the whole target, replays the commands in order,
// flushes every painted pixel back into frame.Pix, and releases the
// context before returning, on every exit path. Afterwards the list is
// Reset so the next frame starts empty.
//
// Unsupported commands (curves, multi-color gradient rectangles) are
// skipped with one diagnostic line each; the rest of the list still
// renders. Drawing errors reported by gg are joined into the returned
// error after the whole list has been processed.
func Render(list *CommandList, frame *Frame) error {
	if err := frame.validate(); err != nil {
		return err
	}

	pm := gg.NewPixmap(frame.Width, frame.Height)
	frame.copyRowsTo(pm.Data())

	ctx := gg.NewContext(frame.Width, frame.Height, gg.WithPixmap(pm))
	defer ctx.Close()

	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	st := &renderState{ctx: ctx, pm: pm, bounds: bounds, clip: bounds}
	scissor(ctx, 0, 0, frame.Width, frame.Height)

	var errs []error
	for cmd := range list.Commands() {
		if err := st.replay(cmd); err != nil {
			errs = append(errs, err)
		}
	}

	frame.copyRowsFrom(pm.Data())
	list.Reset()
	return errors.Join(errs...)
}

// renderState carries the drawing context and the active scissor for one
// Render call. The scissor is tracked as a rectangle alongside the
// context's clip because text and image drawing write into the pixmap
// without consulting the clip stack; those paths apply the scissor during
// compositing instead.
type renderState struct {
	ctx    *gg.Context
	pm     *gg.Pixmap
	bounds image.Rectangle
	clip   image.Rectangle
}

// replay dispatches one command to the drawing context.
func (st *renderState) replay(cmd Command) error {
	ctx := st.ctx
	switch cmd := cmd.(type) {
	case NopCommand:
		return nil

	case ScissorCommand:
		scissor(ctx, cmd.X, cmd.Y, cmd.W, cmd.H)
		st.clip = image.Rect(cmd.X, cmd.Y, cmd.X+cmd.W, cmd.Y+cmd.H).Intersect(st.bounds)
		return nil

	case LineCommand:
		setStroke(ctx, cmd.Color, cmd.Thickness)
		ctx.DrawLine(float64(cmd.X0), float64(cmd.Y0), float64(cmd.X1), float64(cmd.Y1))
		return ctx.Stroke()

	case RectCommand:
		setStroke(ctx, cmd.Color, cmd.Thickness)
		rectPath(ctx, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Rounding)
		return ctx.Stroke()

	case RectFilledCommand:
		setColor(ctx, cmd.Color)
		rectPath(ctx, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Rounding)
		return ctx.Fill()

	case CircleCommand:
		r := min(cmd.W, cmd.H) / 2
		setStroke(ctx, cmd.Color, cmd.Thickness)
		ctx.DrawCircle(float64(cmd.X+r), float64(cmd.Y+r), float64(r))
		return ctx.Stroke()

	case CircleFilledCommand:
		r := min(cmd.W, cmd.H) / 2
		setColor(ctx, cmd.Color)
		ctx.DrawCircle(float64(cmd.X+r), float64(cmd.Y+r), float64(r))
		return ctx.Fill()

	case ArcCommand:
		setStroke(ctx, cmd.Color, cmd.Thickness)
		ctx.DrawArc(float64(cmd.CX), float64(cmd.CY), float64(cmd.R), cmd.A0, cmd.A1)
		ctx.ClosePath()
		return ctx.Stroke()

	case ArcFilledCommand:
		setColor(ctx, cmd.Color)
		ctx.DrawArc(float64(cmd.CX), float64(cmd.CY), float64(cmd.R), cmd.A0, cmd.A1)
		ctx.ClosePath()
		return ctx.Fill()

	case TriangleCommand:
		setStroke(ctx, cmd.Color, cmd.Thickness)
		trianglePath(ctx, cmd.A, cmd.B, cmd.C)
		return ctx.Stroke()

	case TriangleFilledCommand:
		setColor(ctx, cmd.Color)
		trianglePath(ctx, cmd.A, cmd.B, cmd.C)
		return ctx.Fill()

	case PolygonCommand:
		if len(cmd.Points) == 0 {
			return nil
		}
		setStroke(ctx, cmd.Color, cmd.Thickness)
		polyPath(ctx, cmd.Points, true)
		return ctx.Stroke()

	case PolygonFilledCommand:
		if len(cmd.Points) == 0 {
			return nil
		}
		setColor(ctx, cmd.Color)
		polyPath(ctx, cmd.Points, true)
		return ctx.Fill()

	case PolylineCommand:
		if len(cmd.Points) == 0 {
			return nil
		}
		setStroke(ctx, cmd.Color, cmd.Thickness)
		polyPath(ctx, cmd.Points, false)
		return ctx.Stroke()

	case TextCommand:
		if cmd.Font == nil || cmd.Text == "" {
			return nil
		}
		st.drawText(cmd)
		return nil

	case ImageCommand:
		st.drawImage(cmd)
		return nil

	default:
		// Curves, multi-color gradient rectangles, and any future
		// command kinds: skip without failing the frame.
		Logger().Warn("nkgg: unsupported draw command", "type", cmd.Type().String())
		return nil
	}
}

// scissor replaces the active clip rectangle. Unlike gg's stacking
// ClipRect, a scissor update discards the previous clip entirely.
func scissor(ctx *gg.Context, x, y, w, h int) {
	ctx.ResetClip()
	ctx.ClipRect(float64(x), float64(y), float64(w), float64(h))
}

// setColor sets the context's solid paint from an 8-bit color.
func setColor(ctx *gg.Context, col Color) {
	ctx.SetRGBA(col.Normalized())
}

// setStroke sets paint and line width for a stroked primitive.
func setStroke(ctx *gg.Context, col Color, thickness int) {
	setColor(ctx, col)
	ctx.SetLineWidth(float64(thickness))
}

// rectPath builds the rectangle path. A positive rounding becomes four
// quarter-circle corner arcs joined by straight edges, swept top-right,
// bottom-right, bottom-left, top-left. The radius is used as given:
// a rounding larger than half the shorter side self-intersects exactly
// like the unclamped source geometry.
func rectPath(ctx *gg.Context, xi, yi, wi, hi, rounding int) {
	x, y, w, h := float64(xi), float64(yi), float64(wi), float64(hi)
	if rounding <= 0 {
		ctx.DrawRectangle(x, y, w, h)
		return
	}
	r := float64(rounding)
	ctx.NewSubPath()
	ctx.MoveTo(x+r, y)
	ctx.LineTo(x+w-r, y)
	ctx.DrawArc(x+w-r, y+r, r, -math.Pi/2, 0)
	ctx.LineTo(x+w, y+h-r)
	ctx.DrawArc(x+w-r, y+h-r, r, 0, math.Pi/2)
	ctx.LineTo(x+r, y+h)
	ctx.DrawArc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	ctx.LineTo(x, y+r)
	ctx.DrawArc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	ctx.ClosePath()
}

// trianglePath builds a closed triangle path.
func trianglePath(ctx *gg.Context, a, b, c Point) {
	ctx.NewSubPath()
	ctx.MoveTo(float64(a.X), float64(a.Y))
	ctx.LineTo(float64(b.X), float64(b.Y))
	ctx.LineTo(float64(c.X), float64(c.Y))
	ctx.LineTo(float64(a.X), float64(a.Y))
	ctx.ClosePath()
}

// polyPath builds a path through the points, closed back to the first
// point for polygons and left open for polylines.
func polyPath(ctx *gg.Context, pts []Point, closed bool) {
	ctx.NewSubPath()
	ctx.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		ctx.LineTo(float64(p.X), float64(p.Y))
	}
	if closed {
		ctx.LineTo(float64(pts[0].X), float64(pts[0].Y))
		ctx.ClosePath()
	}
}

// drawText rasterizes the run into a transient pixmap, baseline at the
// font's ascent, and composites only the scissor-intersected portion over
// the frame.
func (st *renderState) drawText(cmd TextCommand) {
	w := int(math.Ceil(cmd.Font.TextWidth(cmd.Text)))
	h := int(math.Ceil(cmd.Font.height))
	if w <= 0 || h <= 0 {
		return
	}
	dst := image.Rect(cmd.X, cmd.Y, cmd.X+w, cmd.Y+h).Intersect(st.clip)
	if dst.Empty() {
		return
	}

	scratch := gg.NewPixmap(w, h)
	sc := gg.NewContext(w, h, gg.WithPixmap(scratch))
	defer sc.Close()
	sc.SetFont(cmd.Font.ggFace)
	setColor(sc, cmd.Foreground)
	sc.DrawString(cmd.Text, 0, cmd.Font.metrics.Ascent)

	st.composite(scratch, w, cmd.X, cmd.Y, dst)
}

// drawImage blits the source image into the destination rectangle.
// Independent per-axis scale factors map the source's native size onto
// the rectangle, so its top-left corner lands on the rectangle's
// top-left corner regardless of aspect distortion. The scaled blit is
// rendered into a transient pixmap and only the scissor-intersected
// portion is composited over the frame.
func (st *renderState) drawImage(cmd ImageCommand) {
	if cmd.Img == nil || cmd.W <= 0 || cmd.H <= 0 {
		return
	}
	b := cmd.Img.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return
	}
	dst := image.Rect(cmd.X, cmd.Y, cmd.X+cmd.W, cmd.Y+cmd.H).Intersect(st.clip)
	if dst.Empty() {
		return
	}

	buf := gg.ImageBufFromImage(cmd.Img)
	xs := float64(cmd.W) / float64(sw)
	ys := float64(cmd.H) / float64(sh)

	scratch := gg.NewPixmap(cmd.W, cmd.H)
	sc := gg.NewContext(cmd.W, cmd.H, gg.WithPixmap(scratch))
	defer sc.Close()
	sc.Push()
	sc.Scale(xs, ys)
	sc.DrawImage(buf, 0, 0)
	sc.Pop()

	st.composite(scratch, cmd.W, cmd.X, cmd.Y, dst)
}

// composite source-over blends a scratch pixmap, whose origin sits at
// frame position (ox, oy), over the frame pixmap within dst. Both
// pixmaps hold premultiplied RGBA with tight rows; sw is the scratch
// width in pixels. dst must lie inside both the frame and the scratch.
func (st *renderState) composite(scratch *gg.Pixmap, sw, ox, oy int, dst image.Rectangle) {
	src := scratch.Data()
	out := st.pm.Data()
	fw := st.bounds.Dx()
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		si := ((y-oy)*sw + (dst.Min.X - ox)) * 4
		di := (y*fw + dst.Min.X) * 4
		for x := dst.Min.X; x < dst.Max.X; x++ {
			switch a := uint32(src[si+3]); a {
			case 0:
			case 255:
				copy(out[di:di+4], src[si:si+4])
			default:
				inv := 255 - a
				for c := 0; c < 4; c++ {
					out[di+c] = uint8(uint32(src[si+c]) + (uint32(out[di+c])*inv+127)/255)
				}
			}
			si += 4
			di += 4
		}
	}
}
