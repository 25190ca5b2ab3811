//go:build linux

// Package ioctl issues framebuffer device ioctl calls.
package ioctl

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"
)

// Command to be sent over ioctl.
type Command uintptr

// Commands from <linux/fb.h>.
const (
	GetVarScreenInfo Command = 0x4600 // FBIOGET_VSCREENINFO
	GetFixScreenInfo Command = 0x4602 // FBIOGET_FSCREENINFO
)

func (c Command) String() string {
	switch c {
	case GetVarScreenInfo:
		return "FBIOGET_VSCREENINFO"
	case GetFixScreenInfo:
		return "FBIOGET_FSCREENINFO"
	default:
		return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
	}
}

// Do executes the ioctl call, filling the structure arg points to.
func Do(fd uintptr, command Command, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), uintptr(arg)); errno != 0 {
		return errors.WrapPrefix(&os.SyscallError{Syscall: "SYS_IOCTL", Err: errno}, command.String(), 0)
	}
	return nil
}
