package nkgg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFontData returns an embedded TTF for tests.
func testFontData(t *testing.T) []byte {
	t.Helper()
	return goregular.TTF
}

// writeTestFont writes the embedded test font to a temp file and returns
// its path.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("failed to write test font: %v", err)
	}
	return path
}

func TestLoadFontIdempotent(t *testing.T) {
	cache := NewFontCache()
	path := writeTestFont(t)

	f1, err := cache.LoadFont(path, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	f2, err := cache.LoadFont(path, 16)
	if err != nil {
		t.Fatalf("LoadFont (second): %v", err)
	}

	if f1 != f2 {
		t.Error("same (path, size) returned distinct Font handles")
	}
	if cache.NumFaces() != 1 {
		t.Errorf("NumFaces() = %d, want 1", cache.NumFaces())
	}
	if cache.NumFonts() != 1 {
		t.Errorf("NumFonts() = %d, want 1", cache.NumFonts())
	}
}

func TestLoadFontSharesFaceAcrossSizes(t *testing.T) {
	cache := NewFontCache()
	path := writeTestFont(t)

	f16, err := cache.LoadFont(path, 16)
	if err != nil {
		t.Fatalf("LoadFont size 16: %v", err)
	}
	f24, err := cache.LoadFont(path, 24)
	if err != nil {
		t.Fatalf("LoadFont size 24: %v", err)
	}

	if f16 == f24 {
		t.Error("different sizes returned the same Font handle")
	}
	if f16.face != f24.face {
		t.Error("different sizes did not share the loaded face")
	}
	if cache.NumFaces() != 1 {
		t.Errorf("NumFaces() = %d, want 1", cache.NumFaces())
	}
	if cache.NumFonts() != 2 {
		t.Errorf("NumFonts() = %d, want 2", cache.NumFonts())
	}
}

func TestLoadFontMissingFile(t *testing.T) {
	cache := NewFontCache()
	if _, err := cache.LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 16); err == nil {
		t.Error("expected error for missing font file")
	}
	if cache.NumFaces() != 0 {
		t.Errorf("NumFaces() = %d after failed load, want 0", cache.NumFaces())
	}
}

func TestLoadFontInvalidSize(t *testing.T) {
	cache := NewFontCache()
	path := writeTestFont(t)

	for _, size := range []int{0, -4} {
		if _, err := cache.LoadFont(path, size); !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("LoadFont(size=%d): got %v, want ErrInvalidFontSize", size, err)
		}
	}
}

func TestLoadFontData(t *testing.T) {
	cache := NewFontCache()

	f1, err := cache.LoadFontData("goregular", testFontData(t), 16)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	f2, err := cache.LoadFontData("goregular", testFontData(t), 16)
	if err != nil {
		t.Fatalf("LoadFontData (second): %v", err)
	}

	if f1 != f2 {
		t.Error("same (name, size) returned distinct Font handles")
	}
	if f1.Path() != "goregular" {
		t.Errorf("Path() = %q, want %q", f1.Path(), "goregular")
	}
}

func TestLoadFontDataBadData(t *testing.T) {
	cache := NewFontCache()
	if _, err := cache.LoadFontData("junk", []byte("not a font"), 16); err == nil {
		t.Error("expected error for unparseable font data")
	}
}

func TestMustLoadFontPanics(t *testing.T) {
	cache := NewFontCache()
	defer func() {
		if recover() == nil {
			t.Error("expected MustLoadFont to panic on missing file")
		}
	}()
	cache.MustLoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 16)
}

func TestFontHeight(t *testing.T) {
	cache := NewFontCache()

	f16, err := cache.LoadFontData("goregular", testFontData(t), 16)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	f32, err := cache.LoadFontData("goregular", testFontData(t), 32)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}

	if f16.Height() <= 0 {
		t.Errorf("Height() = %v, want positive", f16.Height())
	}
	if f32.Height() <= f16.Height() {
		t.Errorf("Height at size 32 (%v) should exceed height at size 16 (%v)",
			f32.Height(), f16.Height())
	}
	if f16.Size() != 16 {
		t.Errorf("Size() = %d, want 16", f16.Size())
	}
}

func TestTextWidthMonotonic(t *testing.T) {
	cache := NewFontCache()
	font, err := cache.LoadFontData("goregular", testFontData(t), 16)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}

	const s = "Hello, world!"
	prev := 0.0
	for i := 0; i <= len(s); i++ {
		w := font.TextWidth(s[:i])
		if w < prev {
			t.Errorf("TextWidth(%q) = %v, less than TextWidth of its prefix (%v)",
				s[:i], w, prev)
		}
		prev = w
	}
}

func TestTextWidthBasics(t *testing.T) {
	cache := NewFontCache()
	font, err := cache.LoadFontData("goregular", testFontData(t), 16)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}

	if w := font.TextWidth(""); w != 0 {
		t.Errorf("TextWidth(\"\") = %v, want 0", w)
	}
	if w := font.TextWidth("i"); w <= 0 {
		t.Errorf("TextWidth(\"i\") = %v, want positive", w)
	}

	// Trailing whitespace has no ink but advances the pen, so it must
	// widen the measured run.
	if a, b := font.TextWidth("ab"), font.TextWidth("ab "); b <= a {
		t.Errorf("trailing space did not widen text: %v vs %v", a, b)
	}
}
