package pixelwriter

import "fmt"

// Format identifies the channel byte order of a framebuffer.
type Format uint8

// Supported formats.
const (
	UnknownFormat Format = iota
	RGBReserved8         // byte0=R, byte1=G, byte2=B, byte3 reserved
	BGRReserved8         // byte0=B, byte1=G, byte2=R, byte3 reserved
)

// BytesPerPixel is the size of one pixel slot for every supported format.
const BytesPerPixel = 4

func (f Format) String() string {
	switch f {
	case RGBReserved8:
		return "RGB 8-bit/channel, reserved"
	case BGRReserved8:
		return "BGR 8-bit/channel, reserved"
	case UnknownFormat:
		return "unknown"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}
