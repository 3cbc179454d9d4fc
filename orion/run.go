package orion

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oliverbestmann/lulu/glimpse"
	"github.com/oliverbestmann/lulu/pulse"
	"github.com/oliverbestmann/lulu/pulse/vulkan"
)

const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Lulu"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Redraw is handed every redraw request. May be nil.
	Redraw func(ctx *pulse.Context)

	// OpenWindow creates the window. Defaults to glimpse.NewWindow
	OpenWindow func(width, height int, title string) (glimpse.Window, error)

	// LoadAPI loads the gpu driver for the window. Defaults to the vulkan driver
	// loaded through the window's vkGetInstanceProcAddr.
	LoadAPI func(win glimpse.Window) (pulse.API, error)

	// Interrupt delivers signals that close the window.
	// Defaults to SIGINT and SIGTERM of the process.
	Interrupt <-chan os.Signal
}

func (opts *RunOptions) withDefaults() {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = DefaultWindowWidth
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = DefaultWindowHeight
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = DefaultWindowTitle
	}

	if opts.OpenWindow == nil {
		opts.OpenWindow = glimpse.NewWindow
	}

	if opts.LoadAPI == nil {
		opts.LoadAPI = loadVulkan
	}
}

func loadVulkan(win glimpse.Window) (pulse.API, error) {
	return vulkan.Load(win.InstanceProcAddr())
}

// Run opens the window, initializes the graphics context and runs the
// session until the window is closed. Everything acquired is released
// before Run returns, no matter how it returns.
func Run(opts RunOptions) error {
	opts.withDefaults()

	// create a new window
	win, err := opts.OpenWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	interrupt := opts.Interrupt
	if interrupt == nil {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)

		interrupt = signals
	}

	// turn interrupts into a regular close request so we unwind normally
	stopSignals := forwardSignals(interrupt, win)
	defer stopSignals()

	api, err := opts.LoadAPI(win)
	if err != nil {
		return fmt.Errorf("load gpu api: %w", err)
	}

	// initialize the vulkan context
	ctx, err := pulse.New(api, win)
	if err != nil {
		return fmt.Errorf("initializing vulkan: %w", err)
	}

	defer ctx.Release()

	session := NewSession(win, ctx)
	session.Redraw = opts.Redraw

	defer func() {
		slog.Info("Session ended",
			slog.String("session", session.ID.String()),
			slog.Any("stats", session.Stats()),
		)
	}()

	slog.Info("Session started",
		slog.String("session", session.ID.String()),
		slog.Int("width", int(ctx.Extent.Width)),
		slog.Int("height", int(ctx.Extent.Height)),
	)

	session.Run()

	return nil
}

type closeRequester interface {
	RequestClose()
}

// forwardSignals requests the window to close for every received signal.
// The returned stop function returns once the forwarding goroutine is gone,
// so the window is not touched anymore after stop.
func forwardSignals(signals <-chan os.Signal, win closeRequester) (stop func()) {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			select {
			case sig := <-signals:
				slog.Info("Received signal, closing window", slog.String("signal", sig.String()))
				win.RequestClose()

			case <-quit:
				return
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}
