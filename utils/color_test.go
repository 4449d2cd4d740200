package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_HexToRGBA(t *testing.T) {
	c, err := HexToRGBA("#1e88e5")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}, c)

	c, err = HexToRGBA("f00")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)

	for _, s := range []string{"", "#12345", "#gggggg", "red"} {
		_, err := HexToRGBA(s)
		assert.Error(t, err, s)
	}
}
