package pixelwriter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reserved marks bytes that a write must leave alone.
const reserved = 0xa5

func testConfig(width, height, stride int, format Format) *Config {
	pix := make([]byte, BytesPerPixel*stride*height)
	for i := range pix {
		pix[i] = reserved
	}
	return &Config{
		Pix:    pix,
		Stride: stride,
		Width:  width,
		Height: height,
		Format: format,
	}
}

func testRandomColor() Color {
	return Color{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		Format Format
		Want   Writer
	}{
		{RGBReserved8, (*rgbWriter)(nil)},
		{BGRReserved8, (*bgrWriter)(nil)},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			config := testConfig(4, 4, 4, test.Format)
			w, err := New(config)
			require.NoError(it, err)
			assert.IsType(it, test.Want, w)
			assert.Same(it, config, w.Config())
			assert.Equal(it, test.Format, w.Format())
		})
	}
}

func TestNewUnsupported(t *testing.T) {
	for _, format := range []Format{UnknownFormat, Format(3), Format(0xff)} {
		t.Run(format.String(), func(it *testing.T) {
			w, err := New(testConfig(4, 4, 4, format))
			assert.ErrorIs(it, err, ErrUnsupportedFormat)
			assert.Nil(it, w)
		})
	}

	w, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
	assert.Nil(t, w)
}

func TestWriteRGB(t *testing.T) {
	config := testConfig(100, 100, 100, RGBReserved8)
	w, err := New(config)
	require.NoError(t, err)

	w.Write(0, 0, Color{R: 255})
	assert.Equal(t, []byte{255, 0, 0, reserved}, config.Pix[0:4])

	w.Write(1, 0, Color{G: 255})
	assert.Equal(t, []byte{0, 255, 0, reserved}, config.Pix[4:8])
	assert.Equal(t, []byte{255, 0, 0, reserved}, config.Pix[0:4])
}

func TestWriteBGR(t *testing.T) {
	config := testConfig(100, 100, 100, BGRReserved8)
	w, err := New(config)
	require.NoError(t, err)

	w.Write(0, 0, Color{R: 255})
	assert.Equal(t, []byte{0, 0, 255, reserved}, config.Pix[0:4])
}

func TestWriteOrder(t *testing.T) {
	tests := []struct {
		Format Format
		Order  func(Color) []byte
	}{
		{RGBReserved8, func(c Color) []byte { return []byte{c.R, c.G, c.B, reserved} }},
		{BGRReserved8, func(c Color) []byte { return []byte{c.B, c.G, c.R, reserved} }},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			// Stride wider than the visible surface, like padded scan lines.
			config := testConfig(13, 7, 16, test.Format)
			w, err := New(config)
			require.NoError(it, err)

			for y := 0; y < config.Height; y++ {
				for x := 0; x < config.Width; x++ {
					c := testRandomColor()
					w.Write(x, y, c)
					offset := 4 * (config.Stride*y + x)
					if !assert.Equal(it, test.Order(c), config.Pix[offset:offset+4], "pixel (%d,%d)", x, y) {
						return
					}
					assert.Equal(it, c, w.(Reader).Read(x, y))
				}
			}

			// Padding slots past Width are never written.
			for y := 0; y < config.Height; y++ {
				for x := config.Width; x < config.Stride; x++ {
					offset := config.PixOffset(x, y)
					assert.Equal(it, []byte{reserved, reserved, reserved, reserved}, config.Pix[offset:offset+4])
				}
			}
		})
	}
}

func TestWriteIdempotent(t *testing.T) {
	for _, format := range []Format{RGBReserved8, BGRReserved8} {
		t.Run(format.String(), func(it *testing.T) {
			once := testConfig(8, 8, 10, format)
			twice := testConfig(8, 8, 10, format)
			w1, err := New(once)
			require.NoError(it, err)
			w2, err := New(twice)
			require.NoError(it, err)

			for i := 0; i < 32; i++ {
				x, y, c := rand.Intn(8), rand.Intn(8), testRandomColor()
				w1.Write(x, y, c)
				w2.Write(x, y, c)
				w2.Write(x, y, c)
			}
			assert.Equal(it, once.Pix, twice.Pix)
		})
	}
}

func TestWriteNonOverlap(t *testing.T) {
	for _, format := range []Format{RGBReserved8, BGRReserved8} {
		t.Run(format.String(), func(it *testing.T) {
			config := testConfig(9, 5, 12, format)
			w, err := New(config)
			require.NoError(it, err)

			for y := 0; y < config.Height; y++ {
				for x := 0; x < config.Width; x++ {
					before := append([]byte(nil), config.Pix...)
					w.Write(x, y, testRandomColor())

					offset := config.PixOffset(x, y)
					assert.Equal(it, before[:offset], config.Pix[:offset])
					assert.Equal(it, before[offset+3:], config.Pix[offset+3:])
				}
			}
		})
	}
}

func TestWriteBounds(t *testing.T) {
	saved := debug
	t.Cleanup(func() { debug = saved })
	debug = true

	w, err := New(testConfig(4, 3, 8, RGBReserved8))
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {7, 2}} {
		want := fmt.Sprintf("pixelwriter: out of framebuffer bounds: (%d,%d) outside 4x3", p[0], p[1])
		assert.PanicsWithError(t, want, func() {
			w.Write(p[0], p[1], Color{})
		})
	}
	assert.NotPanics(t, func() { w.Write(3, 2, Color{}) })
}

type grbWriter struct {
	base
}

func (w *grbWriter) Write(x, y int, c Color) {
	p := w.pixelAt(x, y)
	p[0] = c.G
	p[1] = c.R
	p[2] = c.B
}

func TestRegister(t *testing.T) {
	const grb = Format(0xf0)
	Register(grb, func(config *Config) Writer { return &grbWriter{base{config}} })
	t.Cleanup(func() { delete(writers, grb) })

	config := testConfig(2, 2, 2, grb)
	w, err := New(config)
	require.NoError(t, err)
	w.Write(1, 1, Color{R: 1, G: 2, B: 3})
	assert.Equal(t, []byte{2, 1, 3, reserved}, config.Pix[12:16])

	assert.Panics(t, func() { Register(grb, func(config *Config) Writer { return nil }) })
	assert.Panics(t, func() { Register(RGBReserved8, func(config *Config) Writer { return nil }) })
	assert.Panics(t, func() { Register(UnknownFormat, func(config *Config) Writer { return nil }) })
	assert.Panics(t, func() { Register(Format(0xf1), nil) })
}
