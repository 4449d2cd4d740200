package glyph2svg

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestRaster_Square(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	img, err := Rasterize(squareOutline(), 64, red)
	assert.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// The square spans x in [6.4, 57.6] and y in [6.4, 51.2] once scaled.
	assert.Equal(t, red, img.NRGBAAt(32, 30))
	assert.Equal(t, uint8(0), img.NRGBAAt(1, 1).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(32, 60).A)
}

func TestRaster_WideGlyphIsFitted(t *testing.T) {
	o := squareOutline()
	o.Advance = 2000

	img, err := Rasterize(o, 64, color.Black)
	assert.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestRaster_InvalidSize(t *testing.T) {
	_, err := Rasterize(squareOutline(), 0, color.Black)
	assert.Error(t, err)
}

func TestRaster_SavePNG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "41.png")

	assert.NoError(t, SavePNG(name, squareOutline(), 0, "#00ff00"))

	img, err := imaging.Open(name)
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultPNGSize, img.Bounds().Dx())
	}

	assert.Error(t, SavePNG(name, squareOutline(), 32, "not a color"))
}
