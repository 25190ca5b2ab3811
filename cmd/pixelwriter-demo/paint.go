package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/BeatGlow/pixelwriter"
)

// band is the region painted green on top of the yellow background.
var band = image.Rect(0, 100, 200, 200)

// paint fills the surface yellow and then paints the green band, clipped to the surface.
func paint(w pixelwriter.Writer) {
	dst := pixelwriter.NewImage(w)
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colornames.Yellow), image.Point{}, draw.Src)
	draw.Draw(dst, band, image.NewUniform(colornames.Lime), image.Point{}, draw.Src)
}

var formatNames = map[string]pixelwriter.Format{
	"rgb":     pixelwriter.RGBReserved8,
	"bgr":     pixelwriter.BGRReserved8,
	"unknown": pixelwriter.UnknownFormat,
}

func parseFormat(name string) (pixelwriter.Format, error) {
	format, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return pixelwriter.UnknownFormat, fmt.Errorf("invalid format %q", name)
	}
	return format, nil
}

// parseSize parses "<width>x<height>".
func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q, expected <width>x<height>", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return image.Point{}, fmt.Errorf("invalid width in size %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return image.Point{}, fmt.Errorf("invalid height in size %q", s)
	}
	return image.Pt(w, h), nil
}

// memoryConfig describes a zeroed in-memory framebuffer. A stride of 0 means no padding.
func memoryConfig(size image.Point, stride int, format pixelwriter.Format) (*pixelwriter.Config, error) {
	if stride == 0 {
		stride = size.X
	}
	if stride < size.X {
		return nil, fmt.Errorf("stride %d is smaller than width %d", stride, size.X)
	}
	return &pixelwriter.Config{
		Pix:    make([]byte, pixelwriter.BytesPerPixel*stride*size.Y),
		Stride: stride,
		Width:  size.X,
		Height: size.Y,
		Format: format,
	}, nil
}
