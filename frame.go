package nkgg

import (
	"errors"
	"image"
)

// Common errors for frame validation.
var (
	// ErrInvalidFrameSize is returned when width or height is non-positive.
	ErrInvalidFrameSize = errors.New("nkgg: invalid frame dimensions")

	// ErrInvalidStride is returned when the stride is less than 4*width bytes.
	ErrInvalidStride = errors.New("nkgg: stride too small for width")

	// ErrFrameTooSmall is returned when the pixel buffer is shorter than
	// stride*height bytes.
	ErrFrameTooSmall = errors.New("nkgg: pixel buffer too small")
)

// Frame describes the caller-owned pixel buffer one render call targets.
// Pixels are 32-bit premultiplied RGBA, row-major with an explicit row
// stride in bytes — the same convention as image.RGBA. The buffer's
// lifetime spans the render call; the renderer writes only where commands
// paint, so the caller prepares the background.
type Frame struct {
	// Pix holds the pixel data. Row y starts at Pix[y*Stride].
	Pix []byte

	// Width and Height are the frame dimensions in pixels.
	Width, Height int

	// Stride is the byte distance between vertically adjacent pixels.
	// It must be at least 4*Width.
	Stride int
}

// NewFrame allocates a frame with tightly packed rows.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
		Stride: width * 4,
	}
}

// FrameForImage wraps an image.RGBA without copying. Drawing into the
// frame draws into the image.
func FrameForImage(img *image.RGBA) *Frame {
	b := img.Bounds()
	return &Frame{
		Pix:    img.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: img.Stride,
	}
}

// RGBA returns an image.RGBA view sharing the frame's pixel memory.
func (f *Frame) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Stride,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func (f *Frame) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return ErrInvalidFrameSize
	}
	if f.Stride < f.Width*4 {
		return ErrInvalidStride
	}
	if len(f.Pix) < f.Stride*f.Height {
		return ErrFrameTooSmall
	}
	return nil
}

// copyRowsTo loads the frame's pixels into a tightly packed destination,
// honoring the frame's stride. Unpainted pixels survive the round trip
// byte-exact.
func (f *Frame) copyRowsTo(dst []byte) {
	rowBytes := f.Width * 4
	for y := 0; y < f.Height; y++ {
		copy(dst[y*rowBytes:(y+1)*rowBytes], f.Pix[y*f.Stride:y*f.Stride+rowBytes])
	}
}

// copyRowsFrom flushes a tightly packed source back into the frame's
// buffer, honoring the frame's stride.
func (f *Frame) copyRowsFrom(src []byte) {
	rowBytes := f.Width * 4
	for y := 0; y < f.Height; y++ {
		copy(f.Pix[y*f.Stride:y*f.Stride+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
}
