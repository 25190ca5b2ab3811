package pixelwriter

import (
	"errors"
	"fmt"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("PIXELWRITER_DEBUG") != ""
}

// Errors
var (
	ErrNilConfig         = errors.New("pixelwriter: nil config")
	ErrUnsupportedFormat = errors.New("pixelwriter: unsupported pixel format")
	ErrAlreadyInstalled  = errors.New("pixelwriter: writer already installed")
	ErrBounds            = errors.New("pixelwriter: out of framebuffer bounds")
)

// Writer writes one pixel at a time in the byte order of a single [Format].
type Writer interface {
	// Write stores c at (x, y). The reserved byte of the pixel is left untouched.
	//
	// Coordinates are not checked unless debug mode is enabled, in which case
	// out of bounds coordinates panic with an error wrapping [ErrBounds].
	Write(x, y int, c Color)

	// Config is the surface the writer was constructed for.
	Config() *Config

	// Format of the surface.
	Format() Format
}

// Reader is implemented by writers that can read a pixel back from the framebuffer.
type Reader interface {
	Read(x, y int) Color
}

// WriterFunc constructs the [Writer] for a config of the format it was registered for.
type WriterFunc func(*Config) Writer

var writers = map[Format]WriterFunc{}

// Register makes a writer available for format. It panics if format is
// [UnknownFormat], if fn is nil or if format was registered before.
func Register(format Format, fn WriterFunc) {
	if format == UnknownFormat {
		panic("pixelwriter: Register of unknown format")
	}
	if fn == nil {
		panic("pixelwriter: Register writer is nil")
	}
	if _, dup := writers[format]; dup {
		panic("pixelwriter: Register called twice for " + format.String())
	}
	writers[format] = fn
}

func init() {
	Register(RGBReserved8, func(config *Config) Writer { return &rgbWriter{base{config}} })
	Register(BGRReserved8, func(config *Config) Writer { return &bgrWriter{base{config}} })
}

// New selects and constructs the writer for config.Format.
func New(config *Config) (Writer, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	fn, ok := writers[config.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, config.Format)
	}
	return fn(config), nil
}

type base struct {
	config *Config
}

func (w *base) Config() *Config {
	return w.config
}

func (w *base) Format() Format {
	return w.config.Format
}

// pixelAt returns the three color bytes of pixel (x, y).
func (w *base) pixelAt(x, y int) []byte {
	if debug && !w.config.In(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrBounds, x, y, w.config.Width, w.config.Height))
	}
	offset := w.config.PixOffset(x, y)
	return w.config.Pix[offset : offset+3 : offset+3]
}

type rgbWriter struct {
	base
}

func (w *rgbWriter) Write(x, y int, c Color) {
	p := w.pixelAt(x, y)
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
}

func (w *rgbWriter) Read(x, y int) Color {
	p := w.pixelAt(x, y)
	return Color{R: p[0], G: p[1], B: p[2]}
}

type bgrWriter struct {
	base
}

func (w *bgrWriter) Write(x, y int, c Color) {
	p := w.pixelAt(x, y)
	p[0] = c.B
	p[1] = c.G
	p[2] = c.R
}

func (w *bgrWriter) Read(x, y int) Color {
	p := w.pixelAt(x, y)
	return Color{R: p[2], G: p[1], B: p[0]}
}

// Interface checks.
var (
	_ Writer = (*rgbWriter)(nil)
	_ Writer = (*bgrWriter)(nil)
	_ Reader = (*rgbWriter)(nil)
	_ Reader = (*bgrWriter)(nil)
)
