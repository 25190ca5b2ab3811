package main

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/pixelwriter"
	"github.com/BeatGlow/pixelwriter/framebuffer"
)

var (
	debug      bool
	deviceName string
	backlight  string
	memory     string
	formatName string
	stride     int
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "pixelwriter-demo",
	Short: "paint a framebuffer through a pixel writer",
	Long: "pixelwriter-demo installs the pixel writer matching the framebuffer format, fills the\n" +
		"screen yellow and paints a green band. Use --memory to paint an in-memory framebuffer.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), newLogger())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&debug, "debug", false, "debug logging and error stacks")
	flags.StringVar(&deviceName, "device", framebuffer.DefaultDevice, "framebuffer device")
	flags.StringVar(&backlight, "backlight", "", "backlight GPIO pin (default: none)")
	flags.StringVar(&memory, "memory", "", "use an in-memory framebuffer of <width>x<height>")
	flags.StringVar(&formatName, "format", "bgr", "in-memory pixel format (rgb, bgr)")
	flags.IntVar(&stride, "stride", 0, "in-memory pixels per scan line (default: width)")
	flags.StringVarP(&output, "output", "o", "", "write the in-memory framebuffer to a PNG file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		}
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, logger *slog.Logger) error {
	if memory != "" {
		return runMemory(logger)
	}
	return runDevice(ctx, logger)
}

func runMemory(logger *slog.Logger) error {
	size, err := parseSize(memory)
	if err != nil {
		return err
	}
	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}
	config, err := memoryConfig(size, stride, format)
	if err != nil {
		return err
	}

	var slot pixelwriter.Slot
	w, err := install(&slot, config, logger)
	if err != nil {
		return err
	}
	paint(w)

	if output == "" {
		return nil
	}
	f, err := os.Create(output)
	if err != nil {
		return errors.New(err)
	}
	if err = png.Encode(f, pixelwriter.NewImage(w)); err != nil {
		_ = f.Close()
		return errors.New(err)
	}
	if err = f.Close(); err != nil {
		return errors.New(err)
	}
	logger.Info("wrote framebuffer", "file", output)
	return nil
}

func runDevice(ctx context.Context, logger *slog.Logger) error {
	config := &framebuffer.Config{Logger: logger}
	if backlight != "" {
		if _, err := host.Init(); err != nil {
			return errors.New(err)
		}
		if config.Backlight = gpioreg.ByName(backlight); config.Backlight == nil {
			config.Backlight = gpio.INVALID
		}
	}

	dev, err := framebuffer.Open(deviceName, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Error("close failed", "device", deviceName, "error", err)
		}
	}()
	logger.Info("using framebuffer", "device", dev.String())

	var slot pixelwriter.Slot
	w, err := install(&slot, dev.Descriptor(), logger)
	if err != nil {
		return err
	}
	paint(w)

	logger.Info("hit control-c to stop...")
	<-ctx.Done()
	return nil
}

func install(slot *pixelwriter.Slot, config *pixelwriter.Config, logger *slog.Logger) (pixelwriter.Writer, error) {
	w, err := slot.Install(config)
	if err != nil {
		return nil, errors.WrapPrefix(err, "install pixel writer", 0)
	}
	logger.Debug("installed pixel writer",
		"format", w.Format().String(),
		"width", config.Width,
		"height", config.Height,
		"stride", config.Stride)
	return w, nil
}
