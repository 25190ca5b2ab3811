package pixelwriter

import (
	"image"
	"image/color"
	"image/draw"
)

// Image exposes a [Writer] as a [draw.Image], so it can be the destination of
// [draw.Draw] and friends. Set silently ignores pixels outside the surface.
type Image struct {
	Writer
}

// NewImage wraps w.
func NewImage(w Writer) *Image {
	return &Image{Writer: w}
}

func (i *Image) ColorModel() color.Model {
	return ColorModel
}

func (i *Image) Bounds() image.Rectangle {
	return i.Config().Bounds()
}

// At returns the color at (x, y). Pixels outside the surface are transparent, as are
// all pixels if the writer does not implement [Reader].
func (i *Image) At(x, y int) color.Color {
	if !i.Config().In(x, y) {
		return color.Transparent
	}
	r, ok := i.Writer.(Reader)
	if !ok {
		return color.Transparent
	}
	return r.Read(x, y)
}

func (i *Image) Set(x, y int, c color.Color) {
	if c == nil || !i.Config().In(x, y) {
		return
	}
	i.Write(x, y, colorModel(c).(Color))
}

// Interface checks.
var _ draw.Image = (*Image)(nil)
