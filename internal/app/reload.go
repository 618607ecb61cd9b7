package app

import (
	"github.com/dshills/fcconsole/internal/config"
	"github.com/dshills/fcconsole/internal/config/watcher"
)

// reloadConfig re-reads the config file after a change. Only the log
// level is applied live; other sections take effect on the next start.
func (app *Application) reloadConfig(ev watcher.Event) {
	if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
		app.logger.Warn("config file %s: %s, keeping current settings", ev.Path, ev.Op)
		return
	}

	cfg, err := config.Load(app.configPath)
	if err != nil {
		app.logger.Error("config reload: %v", err)
		return
	}
	applyOverrides(cfg, app.opts)
	if err := cfg.Validate(); err != nil {
		app.logger.Error("config reload: %v", err)
		return
	}

	app.mu.Lock()
	old := app.config
	cfg.Transport = old.Transport
	cfg.Store = old.Store
	app.config = cfg
	app.mu.Unlock()

	level := effectiveLevel(cfg)
	if level != app.logger.Level() {
		app.logger.SetLevel(level)
	}
	app.logger.Info("config reloaded, log level %s", level)
}
