//go:build !linux

package framebuffer

// Open always fails with [ErrNotSupported] on this platform.
func Open(_ string, _ *Config) (*Device, error) {
	return nil, ErrNotSupported
}

// Close does nothing.
func (d *Device) Close() error {
	return nil
}
