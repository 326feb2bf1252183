package icon

import (
	"bytes"
	"errors"
	"image"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeIcon(t *testing.T, b []byte) image.Image {
	t.Helper()

	img, err := ico.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func hasInk(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return true
			}
		}
	}
	return false
}

func TestRenderIdempotent(t *testing.T) {
	f, err := LoadFont("")
	require.NoError(t, err)

	l := Fit(f, "87*", DefaultSize)
	first, err := Render(f, DefaultSize, "87*", l)
	require.NoError(t, err)
	second, err := Render(f, DefaultSize, "87*", l)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderDecodes(t *testing.T) {
	f, err := LoadFont("")
	require.NoError(t, err)

	for _, side := range []int{MinSize, 32, DefaultSize, MaxSize} {
		l := Fit(f, "42", side)
		b, err := Render(f, side, "42", l)
		require.NoError(t, err)

		img := decodeIcon(t, b)
		assert.Equal(t, side, img.Bounds().Dx())
		assert.Equal(t, side, img.Bounds().Dy())
		assert.True(t, hasInk(img), "side %d", side)
	}
}

func TestRenderRejectsSize(t *testing.T) {
	f, err := LoadFont("")
	require.NoError(t, err)

	_, err = Render(f, MaxSize+1, "42", Layout{Scale: 10})
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "42", renderErr.Text)
}

func TestLoadFontMissingFile(t *testing.T) {
	_, err := LoadFont("/nonexistent/font.ttf")
	assert.Error(t, err)
}

func TestParseFontGarbage(t *testing.T) {
	_, err := ParseFont([]byte("not a font"))
	assert.Error(t, err)
}
