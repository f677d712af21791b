package app

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/render"
)

// Notifier shows informational messages to the user
type Notifier interface {
	Info(title, message string) error
}

type options struct {
	logger     *slog.Logger
	notifier   Notifier
	title      string
	background mgl32.Vec4
}

// Option configures a MainWindow or an Application
type Option func(*options)

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = render.NopLogger()
		}
		o.logger = l
	}
}

// WithNotifier sets the target of the About command
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithTitle sets the base window title
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithBackground sets the color painted while the canvas is hidden
func WithBackground(c mgl32.Vec4) Option {
	return func(o *options) {
		o.background = c
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:     render.NopLogger(),
		title:      DefaultTitle,
		background: FrameBackground,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = logNotifier{logger: o.logger}
	}
	return o
}

// logNotifier writes messages to the log when no dialog backend is set.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Info(title, message string) error {
	n.logger.Info(message, "title", title)
	return nil
}
