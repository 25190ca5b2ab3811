package pixelwriter

import "image"

// Config describes a framebuffer surface. It is supplied by the caller, typically
// translated from what firmware or the operating system reported, and is never
// modified by this package.
type Config struct {
	// Pix is the framebuffer memory, starting at the first pixel.
	Pix []byte

	// Stride is the number of pixel slots per scan line. It may exceed Width.
	Stride int

	// Width is the horizontal resolution in pixels.
	Width int

	// Height is the vertical resolution in pixels.
	Height int

	// Format is the channel byte order of Pix.
	Format Format
}

// Bounds is the visible surface.
func (c *Config) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (c *Config) PixOffset(x, y int) int {
	return BytesPerPixel * (c.Stride*y + x)
}

// In reports whether (x, y) is inside the visible surface.
func (c *Config) In(x, y int) bool {
	return 0 <= x && x < c.Width && 0 <= y && y < c.Height
}
