package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelFormatString(t *testing.T) {
	pf := PixelFormat{Red: 8, Green: 8, Blue: 8, Alpha: 8, Depth: 24, Stencil: 8}
	assert.Equal(t, "RGBA 8/8/8/8, depth 24, stencil 8", pf.String())
	assert.Equal(t, 32, pf.ColorBits())

	assert.Equal(t, "RGBA 0/0/0/0, depth 0, stencil 0", PixelFormat{}.String())
}
