// Package pixelwriter writes single pixels into a linear framebuffer.
//
// The channel byte order of the framebuffer is reported at runtime (by firmware, a boot
// loader or the operating system) as a [Format]. A [Writer] for that format is selected
// once, by [New] or [Slot.Install], and every later pixel write goes through it without
// inspecting the format again.
//
// Every supported format stores a pixel in 4 bytes: three color channels in a fixed
// order followed by a reserved byte that writes never touch.
package pixelwriter
