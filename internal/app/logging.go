package app

import "github.com/dshills/actionmap/internal/logging"

func newLogger(opts Options) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(opts.LogLevel)
	cfg.Output = opts.LogOutput
	return logging.New(cfg).WithComponent("app")
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *logging.Logger {
	if app.logger == nil {
		return logging.Default()
	}
	return app.logger
}

// logComponentError logs an error with component context.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("error: %v", err)
	}
}
