package icon

import (
	"github.com/sirupsen/logrus"
)

// Generator turns battery readings into tray icons.
type Generator struct {
	font *Font
	size int
}

// NewGenerator returns a Generator drawing size x size icons with font.
func NewGenerator(font *Font, size int) *Generator {
	return &Generator{
		font: font,
		size: size,
	}
}

// Size is the side length of the icons this Generator renders.
func (g *Generator) Size() int {
	return g.size
}

// Layout formats and fits the text for a reading without drawing it.
func (g *Generator) Layout(percentage int, charging bool) (string, Layout, error) {
	if err := ValidatePercentage(percentage); err != nil {
		return "", Layout{}, err
	}

	text := FormatText(percentage, charging)
	return text, Fit(g.font, text, g.size), nil
}

// Icon renders the icon for a reading.
func (g *Generator) Icon(percentage int, charging bool) ([]byte, error) {
	text, layout, err := g.Layout(percentage, charging)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"text":    text,
		"scale":   layout.Scale,
		"originX": layout.OriginX,
		"originY": layout.OriginY,
	}).Trace("rendering icon")

	return Render(g.font, g.size, text, layout)
}
