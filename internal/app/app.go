package app

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/config/watcher"
	"github.com/dshills/actionmap/internal/input/action"
	"github.com/dshills/actionmap/internal/input/win32"
	"github.com/dshills/actionmap/internal/logging"
)

// DefaultFrameInterval is used when Options.FrameInterval is not positive.
const DefaultFrameInterval = 16 * time.Millisecond

// terminalWindow is the window handle the terminal pump posts messages to.
const terminalWindow win32.HWND = 1

// Options configures the application.
type Options struct {
	// ConfigPath is the binding file. Empty selects the built-in bindings.
	ConfigPath string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// FrameInterval is the time between frame resets.
	FrameInterval time.Duration

	// Watch reloads the binding file when it changes.
	Watch bool
}

// Application owns the action system, the platform decoder and the frame
// loop. The system and decoder are only touched by the goroutine running
// Run, or by the caller before Run starts.
type Application struct {
	mu sync.Mutex

	opts   Options
	logger *logging.Logger
	loader *config.Loader

	bindings  *config.Bindings
	system    *action.System
	decoder   *win32.Decoder
	router    *win32.Router
	registrar *win32.RawInputRegistrar
	metrics   *action.Metrics
	watcher   *watcher.Watcher

	screen tcell.Screen
	mouse  mouseTranslator
	status string

	running atomic.Bool
	closed  bool
	done    chan struct{}
	loop    sync.WaitGroup
}

// New creates an application and sets up its input system.
func New(opts Options) (*Application, error) {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logging
	app.logger = newLogger(app.opts)
	logging.SetDefault(app.logger)

	// 2. Input plumbing shared across reloads
	app.loader = config.NewLoader(config.WithLogger(app.logger))
	app.router = win32.NewRouter()
	// A null target makes raw input follow the focused window.
	app.registrar = win32.NewRawInputRegistrar(0)
	app.metrics = action.NewMetrics()

	// 3. Bindings and the action system
	b, err := app.loadBindings()
	if err != nil {
		return &InitError{Component: "bindings", Err: err}
	}
	if err := app.apply(b); err != nil {
		return &InitError{Component: "input", Err: err}
	}
	app.status = "loaded " + app.bindingSource()

	// 4. Hot reload
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := watcher.New(app.opts.ConfigPath)
		if err != nil {
			app.system.ResetSetup()
			return &InitError{Component: "watcher", Err: err}
		}
		app.watcher = w
		app.logger.Info("watching %s for changes", w.Path())
	}

	return nil
}

// SetScreen sets the terminal screen. Must be called before Run.
func (app *Application) SetScreen(s tcell.Screen) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.screen = s
	return nil
}

// System returns the current action system. It changes on reload.
func (app *Application) System() *action.System { return app.system }

// Decoder returns the current platform decoder. It changes on reload.
func (app *Application) Decoder() *win32.Decoder { return app.decoder }

// Router returns the window router the terminal pump posts to.
func (app *Application) Router() *win32.Router { return app.router }

// Metrics returns the dispatch metrics shared by every reloaded system.
func (app *Application) Metrics() *action.Metrics { return app.metrics }

// IsRunning returns true if the frame loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown stops the frame loop and releases the input system. It is safe
// to call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return
	}
	app.closed = true
	close(app.done)
	app.mu.Unlock()

	// The loop owns the system until it exits.
	app.loop.Wait()

	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing watcher: %v", err)
		}
	}
	if app.system != nil {
		app.system.ResetSetup()
	}
	app.logger.Info("shutdown complete")
}
