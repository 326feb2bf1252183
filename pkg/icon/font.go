package icon

import (
	"os"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics measures text at a given font scale.
type Metrics interface {
	// TextWidth is the sum of the horizontal advances of every rune in text.
	TextWidth(text string, scale float64) float64
	// Ascent is the distance from the baseline to the top of the font.
	Ascent(scale float64) float64
}

var _ Metrics = &Font{}

// Font is a parsed TrueType/OpenType font. It is safe for concurrent use.
type Font struct {
	f *opentype.Font

	// buf is reused by every metrics lookup. sfnt.Buffer is not safe for
	// concurrent use, hence mu.
	mu  *sync.Mutex
	buf sfnt.Buffer
}

// LoadFont parses the font file at path. An empty path selects the embedded
// Go Mono font.
func LoadFont(path string) (*Font, error) {
	if path == "" {
		return ParseFont(gomono.TTF)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read font file %s", path)
	}

	f, err := ParseFont(b)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load font file %s", path)
	}

	return f, nil
}

// ParseFont parses font data.
func ParseFont(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse font")
	}

	return &Font{
		f:  f,
		mu: &sync.Mutex{},
	}, nil
}

// ppem converts a scale to pixels per em the same way opentype.NewFace does
// at 72 DPI, so measuring and drawing agree.
func ppem(scale float64) fixed.Int26_6 {
	return fixed.Int26_6(0.5 + scale*64)
}

func (f *Font) TextWidth(text string, scale float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	size := ppem(scale)

	var width fixed.Int26_6
	for _, r := range text {
		// Runes missing from the font map to glyph 0 (.notdef), which still
		// has an advance.
		idx, err := f.f.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		adv, err := f.f.GlyphAdvance(&f.buf, idx, size, font.HintingNone)
		if err != nil {
			continue
		}
		width += adv
	}

	return fixedToFloat(width)
}

func (f *Font) Ascent(scale float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.f.Metrics(&f.buf, ppem(scale), font.HintingNone)
	if err != nil {
		return 0
	}

	return fixedToFloat(m.Ascent)
}

// newFace returns a drawing face at scale. Callers must close it.
func (f *Font) newFace(scale float64) (font.Face, error) {
	return opentype.NewFace(f.f, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
