package app

import (
	"context"
	"sync"
	"time"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"wgpt/internal/config"
	"wgpt/internal/infrastructure/errors"
	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
	"wgpt/internal/services"
	"wgpt/internal/taskbar"
)

// App struct represents the main application
type App struct {
	ctx       context.Context
	config    *config.Config
	windowAPI platform.WindowAPI
	icons     taskbar.IconSource
	tracker   *services.BadgeTracker
	logger    logging.Logger
	overlay   string

	// execJS runs script in the hosted page
	execJS func(ctx context.Context, js string)

	mutex     sync.RWMutex
	window    platform.Window
	windowErr error
	titleIcon platform.Icon
}

// NewApp creates a new App application struct with dependency injection
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	overlay, err := RenderOverlay(cfg)
	if err != nil {
		return nil, err
	}

	badger := taskbar.NewPlatformBadger(cfg.BadgeCandidates, logger)

	return &App{
		config:    cfg,
		windowAPI: platform.NewWindowAPI(),
		icons:     taskbar.NewResolver(taskbar.NewIconLoader(), logger),
		tracker:   services.NewBadgeTracker(badger, logger),
		logger:    logger,
		overlay:   overlay,
		execJS:    wailsruntime.WindowExecJS,
		windowErr: errors.HandleWindowNotFound("startup", cfg.Title),
	}, nil
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	// The native window may not be enumerable until the message loop runs
	go func() {
		if err := a.attachWindow(ctx); err != nil {
			if errors.IsUnsupported(err) {
				a.logger.Info("Taskbar badge not supported on this platform")
				return
			}
			logging.LogShellError(a.logger, err, "attach_window", map[string]interface{}{"title": a.config.Title})
		}
	}()

	a.logger.Info("Application started", "environment", a.config.Environment, "url", a.config.URL)
}

// attachWindow locates the native window, gives it the title-bar icon and hands it to the tracker
func (a *App) attachWindow(ctx context.Context) error {
	retry := errors.DefaultRetryConfig()
	retry.MaxAttempts = a.config.WindowLookupAttempts
	retry.InitialDelay = a.config.WindowLookupDelay

	var window platform.Window
	err := errors.WithRetryContext(ctx, retry, func() error {
		w, err := a.windowAPI.FindAppWindow(a.config.Title)
		if err != nil {
			return err
		}
		window = w
		return nil
	}, "find_window")

	a.mutex.Lock()
	a.windowErr = err
	if err == nil {
		a.window = window
	}
	a.mutex.Unlock()

	if err != nil {
		return err
	}

	a.logger.Debug("Native window located", "window", window.String())
	a.applyTitleBarIcon(window)
	a.tracker.AttachWindow(window)
	return nil
}

// applyTitleBarIcon sets the small window icon when one of the configured files exists
func (a *App) applyTitleBarIcon(window platform.Window) {
	icon, ok := a.icons.LoadIconAny(a.config.TitleBarIcons)
	if !ok {
		a.logger.Debug("No title-bar icon found", "candidates", a.config.TitleBarIcons)
		return
	}
	if err := a.windowAPI.SetTitleBarIcon(window, icon); err != nil {
		a.icons.Release(icon)
		logging.LogShellError(a.logger, err, "set_titlebar_icon", nil)
		return
	}

	a.mutex.Lock()
	previous := a.titleIcon
	a.titleIcon = icon
	a.mutex.Unlock()

	if previous != 0 {
		a.icons.Release(previous)
	}
}

// DomReady is called after each page load; it injects the overlay script
func (a *App) DomReady(ctx context.Context) {
	if a.execJS == nil {
		return
	}
	a.execJS(ctx, a.overlay)
	a.logger.Debug("Overlay script injected")
}

// BeforeClose is called when the application is about to quit.
// Returning false lets the close proceed.
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	start := time.Now()

	a.tracker.Clear()

	a.mutex.Lock()
	icon := a.titleIcon
	a.titleIcon = 0
	a.mutex.Unlock()
	if icon != 0 {
		a.icons.Release(icon)
	}

	logging.LogShellOperation(a.logger, "shutdown", time.Since(start), nil)
}

// SetBadge shows count on the taskbar button; 0 clears it and counts above 9 show "9+".
// Negative counts are rejected.
func (a *App) SetBadge(count int) error {
	if count < 0 {
		return errors.HandleInvalidCount("set_badge", count)
	}

	a.mutex.RLock()
	window, windowErr := a.window, a.windowErr
	a.mutex.RUnlock()

	if window == 0 {
		// Off Windows the command is accepted and does nothing
		if errors.IsUnsupported(windowErr) {
			return nil
		}
		return errors.HandleWindowNotFound("set_badge", a.config.Title)
	}

	a.tracker.SetCount(count)
	return nil
}

// ReportTitle receives the page title from the overlay script and updates the badge when the count changed
func (a *App) ReportTitle(title string) error {
	count := a.tracker.ReportTitle(title)
	a.logger.Debug("Page title reported", "count", count)
	return nil
}

// HostedURL returns the page the bootstrap document navigates to
func (a *App) HostedURL() string {
	return a.config.URL
}

// GetBadgeStats returns badge tracker activity for diagnostics
func (a *App) GetBadgeStats() services.BadgeStats {
	return a.tracker.Stats()
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}
