package nkgg

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg/text"
)

// Common errors for font cache operations.
var (
	// ErrInvalidFontSize is returned when the requested pixel size is not positive.
	ErrInvalidFontSize = errors.New("nkgg: font size must be positive")
)

// face is a loaded, size-independent font outline source tied to its
// path (or caller-chosen name for in-memory fonts). It is created once
// per distinct path and shared by all sizes derived from it.
type face struct {
	path   string
	source *text.FontSource
}

// sizedKey identifies a Font in the cache.
type sizedKey struct {
	path string
	size int
}

// Font is a face at one specific pixel size. It is the handle toolkits
// hold for the lifetime of the process, exposing the two callbacks they
// need during layout: line height and text width. Both may be called at
// any time, independent of any render pass.
type Font struct {
	face    *face
	size    int
	ggFace  text.Face
	metrics text.Metrics
	height  float64
}

// Path returns the font file path (or name, for in-memory fonts) this
// Font was loaded from.
func (f *Font) Path() string { return f.face.path }

// Size returns the pixel size this Font was created at.
func (f *Font) Size() int { return f.size }

// Height returns the line height: ascent + descent + line gap, measured
// once when the Font was created.
func (f *Font) Height() float64 { return f.height }

// TextWidth returns the pixel width of a text run. It is the wider of
// the visual bounding width (rightmost ink edge, bearing included) and
// the logical advance width, so trailing whitespace or negative bearings
// never cause clipped layout.
func (f *Font) TextWidth(s string) float64 {
	if s == "" {
		return 0
	}
	ink := 0.0
	for g := range f.ggFace.Glyphs(s) {
		if right := g.X + g.Bounds.MaxX; right > ink {
			ink = right
		}
	}
	return math.Max(ink, f.ggFace.Advance(s))
}

// FontCache owns the face and sized-font tables. Lookups are idempotent:
// requesting the same path twice yields the same face, and the same
// (path, size) pair yields the same Font, with no extra I/O.
//
// LoadFont and LoadFontData are the only mutators and are not safe for
// concurrent use; callers needing that must serialize access externally.
// Reads through Font handles after population are safe from any goroutine.
type FontCache struct {
	faces map[string]*face
	fonts map[sizedKey]*Font
}

// NewFontCache creates an empty font cache.
func NewFontCache() *FontCache {
	return &FontCache{
		faces: make(map[string]*face),
		fonts: make(map[sizedKey]*Font),
	}
}

// NumFaces returns the number of distinct loaded faces.
func (c *FontCache) NumFaces() int { return len(c.faces) }

// NumFonts returns the number of distinct (path, size) fonts.
func (c *FontCache) NumFonts() int { return len(c.fonts) }

// LoadFont returns the Font for a font file at the given pixel size,
// loading and caching the face on first use. The returned handle stays
// valid for the lifetime of the cache.
func (c *FontCache) LoadFont(path string, size int) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	if f, ok := c.fonts[sizedKey{path, size}]; ok {
		return f, nil
	}
	fc, ok := c.faces[path]
	if !ok {
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("nkgg: load font %q: %w", path, err)
		}
		fc = &face{path: path, source: source}
		c.faces[path] = fc
	}
	return c.newFont(fc, size), nil
}

// LoadFontData is LoadFont for an in-memory TTF or OTF. The name acts as
// the dedup key in place of a file path.
func (c *FontCache) LoadFontData(name string, data []byte, size int) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	if f, ok := c.fonts[sizedKey{name, size}]; ok {
		return f, nil
	}
	fc, ok := c.faces[name]
	if !ok {
		source, err := text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("nkgg: parse font %q: %w", name, err)
		}
		fc = &face{path: name, source: source}
		c.faces[name] = fc
	}
	return c.newFont(fc, size), nil
}

// MustLoadFont is LoadFont but panics on error. It is intended for hosts
// that treat a missing font as an unrecoverable configuration error.
func (c *FontCache) MustLoadFont(path string, size int) *Font {
	f, err := c.LoadFont(path, size)
	if err != nil {
		panic(err)
	}
	return f
}

// newFont derives a sized Font from a loaded face and caches it.
// Metrics are queried once here; Height afterwards is a plain field read.
func (c *FontCache) newFont(fc *face, size int) *Font {
	ggFace := fc.source.Face(float64(size))
	m := ggFace.Metrics()
	f := &Font{
		face:    fc,
		size:    size,
		ggFace:  ggFace,
		metrics: m,
		height:  m.LineHeight(),
	}
	c.fonts[sizedKey{fc.path, size}] = f
	return f
}
