// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, which maps its memory and reports it as a
// [pixelwriter.Config] ready to be handed to [pixelwriter.New].
//
// Only 32 bits per pixel framebuffers with 8-bit RGB or BGR channels are supported.
package framebuffer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/pixelwriter"
)

// DefaultDevice is the first framebuffer device.
const DefaultDevice = "/dev/fb0"

// Errors
var (
	ErrNotSupported = errors.Errorf("framebuffer: not supported")
	ErrBacklightPin = errors.Errorf("framebuffer: backlight GPIO pin is invalid")
)

// Config is the framebuffer device configuration.
type Config struct {
	// Backlight pin, driven high on open and low on close. Optional.
	Backlight gpio.PinOut

	// Logger for device events. Optional.
	Logger *slog.Logger
}

// Device is an opened framebuffer device.
type Device struct {
	name      string
	f         *os.File
	data      []byte
	config    pixelwriter.Config
	backlight gpio.PinOut
	logger    *slog.Logger
}

// Descriptor describes the mapped framebuffer memory. It stays valid until [Device.Close].
func (d *Device) Descriptor() *pixelwriter.Config {
	return &d.config
}

func (d *Device) String() string {
	return fmt.Sprintf("framebuffer %s %dx%d (%s)", d.name, d.config.Width, d.config.Height, d.config.Format)
}

// BitField locates one color channel inside a pixel.
type BitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// ParseFormat maps the channel layout reported by the device to a [pixelwriter.Format].
// Offsets are bit positions in a little-endian pixel, so offset 0 is the first byte.
func ParseFormat(bitsPerPixel uint32, red, green, blue BitField) (pixelwriter.Format, error) {
	if bitsPerPixel == 32 &&
		red.Length == 8 && green.Length == 8 && blue.Length == 8 &&
		red.MsbRight == 0 && green.MsbRight == 0 && blue.MsbRight == 0 &&
		green.Offset == 8 {
		switch {
		case red.Offset == 0 && blue.Offset == 16:
			return pixelwriter.RGBReserved8, nil
		case red.Offset == 16 && blue.Offset == 0:
			return pixelwriter.BGRReserved8, nil
		}
	}
	return pixelwriter.UnknownFormat, errors.WrapPrefix(pixelwriter.ErrUnsupportedFormat,
		fmt.Sprintf("framebuffer: %d bpp, red %d/%d, green %d/%d, blue %d/%d",
			bitsPerPixel, red.Offset, red.Length, green.Offset, green.Length, blue.Offset, blue.Length), 0)
}

func backlightPin(config *Config) (gpio.PinOut, error) {
	if config == nil || config.Backlight == nil {
		return nil, nil
	}
	if config.Backlight == gpio.INVALID {
		return nil, ErrBacklightPin
	}
	return config.Backlight, nil
}

func setBacklight(pin gpio.PinOut, level gpio.Level) error {
	if pin == nil {
		return nil
	}
	if err := pin.Out(level); err != nil {
		return errors.WrapPrefix(err, "framebuffer: backlight "+pin.Name(), 0)
	}
	return nil
}

func loggerFor(config *Config) *slog.Logger {
	if config == nil || config.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config.Logger
}
