package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leterax/go-glcanvas/pkg/event"
)

// Host is the platform window and its event loop.
type Host interface {
	Frame
	// SetEventHandler installs the receiver of all window events.
	SetEventHandler(h event.Handler)
	Show()
	// WaitEvents blocks until at least one event was dispatched or a short
	// timeout elapsed.
	WaitEvents()
	ShouldClose() bool
}

// Application owns the single main window
type Application struct {
	host   Host
	window *MainWindow
	logger *slog.Logger
}

// NewApplication builds the main window inside host
func NewApplication(host Host, opts ...Option) (*Application, error) {
	o := buildOptions(opts)

	window, err := NewMainWindow(host, opts...)
	if err != nil {
		return nil, err
	}
	host.SetEventHandler(window)

	return &Application{
		host:   host,
		window: window,
		logger: o.logger,
	}, nil
}

// Window returns the main window
func (a *Application) Window() *MainWindow {
	return a.window
}

// Run shows the main window and dispatches events until it is closed or ctx
// is done. The main window is torn down before Run returns.
func (a *Application) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := a.window.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close main window: %w", cerr))
		}
	}()

	a.logger.Info("menu", "bar", a.window.Menus().String())
	a.host.Show()
	a.window.Layout()

	for !a.host.ShouldClose() && !a.window.Closing() {
		if err := ctx.Err(); err != nil {
			a.logger.Info("shutting down", "reason", err)
			return nil
		}
		if a.window.NeedsPaint() {
			a.window.Paint()
		}
		a.host.WaitEvents()
	}

	a.logger.Debug("main window closed")
	return nil
}
