package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultSize is the side length of a rendered icon.
	DefaultSize = 64
	// MinSize and MaxSize bound the side length. ICO cannot hold images
	// larger than 256x256.
	MinSize = 16
	MaxSize = 256
)

var textColor = color.NRGBA{A: 255}

// Render draws text on a transparent side x side canvas and encodes it as ICO.
// The same arguments always produce the same bytes.
func Render(f *Font, side int, text string, l Layout) ([]byte, error) {
	if side < MinSize || side > MaxSize {
		return nil, &RenderError{Text: text, Err: fmt.Errorf("icon size %d is outside [%d, %d]", side, MinSize, MaxSize)}
	}

	face, err := f.newFace(l.Scale)
	if err != nil {
		return nil, &RenderError{Text: text, Err: err}
	}
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, side, side))

	// The layout origin is the top of the text box; the drawer wants the
	// baseline.
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(l.OriginX),
			Y: fixed.I(l.OriginY) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, &RenderError{Text: text, Err: err}
	}

	return buf.Bytes(), nil
}
