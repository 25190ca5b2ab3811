package framebuffer

import (
	"os"
	"unsafe"

	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/pixelwriter"
	"github.com/BeatGlow/pixelwriter/internal/ioctl"
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
//
// The config may be nil.
func Open(name string, config *Config) (*Device, error) {
	backlight, err := backlightPin(config)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.New(err)
	}

	d := &Device{
		name:      name,
		f:         f,
		backlight: backlight,
		logger:    loggerFor(config),
	}

	var (
		info       linuxFixScreenInfo
		screenInfo linuxVarScreenInfo
	)
	if err = ioctl.Do(f.Fd(), ioctl.GetFixScreenInfo, unsafe.Pointer(&info)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(f.Fd(), ioctl.GetVarScreenInfo, unsafe.Pointer(&screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}

	format, err := ParseFormat(screenInfo.BitsPerPixel, screenInfo.Red, screenInfo.Green, screenInfo.Blue)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	if d.data, err = unix.Mmap(int(f.Fd()), 0, int(info.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, errors.WrapPrefix(err, "framebuffer: mmap "+name, 0)
	}

	// Pix starts at the first visible pixel of the panned virtual screen.
	start := int(screenInfo.Yoffset)*int(info.LineLength) + int(screenInfo.Xoffset)*pixelwriter.BytesPerPixel
	d.config = pixelwriter.Config{
		Pix:    d.data[start:],
		Stride: int(info.LineLength) / pixelwriter.BytesPerPixel,
		Width:  int(screenInfo.Xres),
		Height: int(screenInfo.Yres),
		Format: format,
	}

	if err = setBacklight(d.backlight, gpio.High); err != nil {
		_ = d.close()
		return nil, err
	}

	d.logger.Debug("framebuffer opened",
		"device", name,
		"id", unix.ByteSliceToString(info.ID[:]),
		"width", d.config.Width,
		"height", d.config.Height,
		"stride", d.config.Stride,
		"format", format.String(),
		"size", info.SmemLen)
	return d, nil
}

// Close switches the backlight off, unmaps the framebuffer memory and closes the device.
func (d *Device) Close() error {
	err := errors.Join(setBacklight(d.backlight, gpio.Low), d.close())
	d.logger.Debug("framebuffer closed", "device", d.name, "error", err)
	return err
}

func (d *Device) close() error {
	var errs []error
	if d.data != nil {
		if err := unix.Munmap(d.data); err != nil {
			errs = append(errs, errors.WrapPrefix(err, "framebuffer: munmap "+d.name, 0))
		}
		d.data = nil
		d.config.Pix = nil
	}
	if err := d.f.Close(); err != nil {
		errs = append(errs, errors.New(err))
	}
	return errors.Join(errs...)
}

// linuxFixScreenInfo from <linux/fb.h>, struct fb_fix_screeninfo.
type linuxFixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxVarScreenInfo from <linux/fb.h>, struct fb_var_screeninfo.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha BitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
