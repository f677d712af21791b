package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/leterax/go-glcanvas/internal/openglhelper"
	"github.com/leterax/go-glcanvas/pkg/app"
	"github.com/sqweek/dialog"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

// dialogNotifier shows native message boxes
type dialogNotifier struct{}

func (dialogNotifier) Info(title, message string) error {
	dialog.Message("%s", message).Title(title).Info()
	return nil
}

func main() {
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	title := flag.String("title", app.DefaultTitle, "Window title")
	vsync := flag.Bool("vsync", true, "Synchronize buffer swaps with the display refresh")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:  *width,
		Height: *height,
		Title:  *title,
		VSync:  *vsync,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	application, err := app.NewApplication(window,
		app.WithLogger(logger),
		app.WithTitle(*title),
		app.WithNotifier(dialogNotifier{}),
	)
	if err != nil {
		window.Close()
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("application exited with error", "error", err)
		stop()
		window.Close()
		os.Exit(1)
	}
}
