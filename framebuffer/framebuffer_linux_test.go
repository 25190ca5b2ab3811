package framebuffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/gpio"
)

func TestOpenMissing(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "fb9"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, d)
}

func TestOpenNotAFramebuffer(t *testing.T) {
	name := filepath.Join(t.TempDir(), "fb0")
	assert.NoError(t, os.WriteFile(name, make([]byte, 64), 0o600))

	d, err := Open(name, nil)
	assert.ErrorIs(t, err, unix.ENOTTY)
	assert.Nil(t, d)
}

func TestOpenInvalidBacklight(t *testing.T) {
	d, err := Open(DefaultDevice, &Config{Backlight: gpio.INVALID})
	assert.ErrorIs(t, err, ErrBacklightPin)
	assert.Nil(t, d)
}
