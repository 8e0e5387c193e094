package app

import (
	"fmt"

	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/input/action"
	"github.com/dshills/actionmap/internal/input/win32"
)

func (app *Application) bindingSource() string {
	if app.opts.ConfigPath == "" {
		return config.DefaultPath
	}
	return app.opts.ConfigPath
}

func (app *Application) loadBindings() (*config.Bindings, error) {
	if app.opts.ConfigPath == "" {
		return config.Default()
	}
	return app.loader.Load(app.opts.ConfigPath)
}

// apply replaces the action system and decoder with ones built from b. On
// failure the previous system stays active.
func (app *Application) apply(b *config.Bindings) error {
	sys := b.NewSystem(
		action.WithLogger(app.logger),
		action.WithMetrics(app.metrics),
		action.WithPlatform(app.registrar),
	)

	prev := app.system
	if prev != nil {
		prev.ResetSetup()
	}
	if err := sys.Setup(); err != nil {
		if prev != nil {
			if rerr := prev.Setup(); rerr != nil {
				app.logComponentError("input", rerr)
			}
		}
		return fmt.Errorf("setting up input: %w", err)
	}

	// Held buttons and pending clicks survive the swap.
	dec := win32.NewDecoder(sys, b.Decoder, win32.WithLogger(app.logger))
	dec.Inherit(app.decoder)
	app.router.Attach(terminalWindow, dec)

	app.bindings = b
	app.system = sys
	app.decoder = dec
	return nil
}

// Reload rebuilds the input system from the binding file. A failed reload
// keeps the previous system. Must be called from the goroutine running Run,
// or before Run starts.
func (app *Application) Reload() error {
	b, err := app.loadBindings()
	if err == nil {
		err = app.apply(b)
	}
	if err != nil {
		app.logger.Error("reload of %s failed, keeping previous bindings: %v", app.bindingSource(), err)
		app.status = "reload failed: " + err.Error()
		return err
	}

	app.logger.Info("reloaded %s", app.bindingSource())
	app.status = "reloaded " + app.bindingSource()
	return nil
}
