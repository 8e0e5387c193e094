package app

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/config/watcher"
	"github.com/dshills/actionmap/internal/input/action"
	"github.com/dshills/actionmap/internal/input/win32"
)

// Run starts the frame loop on the screen set with SetScreen. It blocks
// until ctx is done, Shutdown is called or the user quits.
func (app *Application) Run(ctx context.Context) error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return nil
	}
	if !app.running.CompareAndSwap(false, true) {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	screen := app.screen
	app.loop.Add(1)
	app.mu.Unlock()

	defer app.loop.Done()
	defer app.running.Store(false)

	if screen == nil {
		return &InitError{Component: "screen", Err: ErrNoScreen}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	screen.EnableMouse()
	screen.EnableFocus()
	defer screen.Fini()

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go pollEvents(screen, events, stop)

	return app.eventLoop(ctx, events)
}

// pollEvents forwards screen events until the screen is finalized or stop
// is closed.
func pollEvents(s tcell.Screen, events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

func (app *Application) eventLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(app.opts.FrameInterval)
	defer ticker.Stop()

	var changes <-chan watcher.Event
	var watchErrs <-chan error
	if app.watcher != nil {
		changes = app.watcher.Events()
		watchErrs = app.watcher.Errors()
	}

	app.frame()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-app.done:
			return nil

		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case <-ticker.C:
			app.frame()

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.logger.Debug("binding file %s: %s", ev.Path, ev.Op)
			_ = app.Reload()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.logComponentError("watcher", err)
		}
	}
}

// frame draws the current state and starts a new input frame.
func (app *Application) frame() {
	if app.screen != nil {
		draw(app.screen, stateLines(app.system, app.metrics.Snapshot(), app.status))
	}
	app.system.ResetFrame()
}

// handleEvent processes one screen event. Returns ErrQuit if the
// application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		for _, m := range app.mouse.translate(e) {
			app.router.Dispatch(m)
		}
	case *tcell.EventKey:
		return app.handleKey(e)
	case *tcell.EventFocus:
		if !e.Focused {
			app.mouse.reset()
			app.router.Dispatch(win32.Message{Hwnd: terminalWindow, Msg: win32.MsgKillFocus, Time: e.When()})
		}
	case *tcell.EventResize:
		if app.screen != nil {
			app.screen.Sync()
		}
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyRune:
	default:
		return nil
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return ErrQuit
	case r == 'p':
		next := action.PolicyHighestPriority
		if app.system.Policy() == action.PolicyHighestPriority {
			next = action.PolicyMultiplex
		}
		app.system.SetPolicy(next)
		app.status = "dispatch policy " + next.String()
	case r >= '1' && r <= '9':
		sets := app.system.Sets()
		i := int(r - '1')
		if i < len(sets) {
			set := sets[i]
			app.system.SetEnabled(set.Name(), !set.IsEnabled())
			app.status = set.Name() + " " + enabledWord(set.IsEnabled())
		}
	}
	return nil
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
