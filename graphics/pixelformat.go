package graphics

import "fmt"

// PixelFormat holds the bit depths of the default framebuffer.
type PixelFormat struct {
	Red, Green, Blue, Alpha int
	Depth, Stencil          int
}

func (p PixelFormat) String() string {
	return fmt.Sprintf("RGBA %d/%d/%d/%d, depth %d, stencil %d",
		p.Red, p.Green, p.Blue, p.Alpha, p.Depth, p.Stencil)
}

// ColorBits is the total number of colour bits per pixel.
func (p PixelFormat) ColorBits() int {
	return p.Red + p.Green + p.Blue + p.Alpha
}
