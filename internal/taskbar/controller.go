package taskbar

import (
	"fmt"
	"time"

	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
)

// Shell opens a scoped session with the OS shell
type Shell interface {
	// Open acquires the shell integration for the calling goroutine.
	// A nil error means the returned Session must be closed.
	Open() (Session, error)
}

// Session is an acquired shell integration. Close releases it.
type Session interface {
	TaskbarList() (TaskbarList, error)
	Close()
}

// TaskbarList is the taskbar button interface of the shell
type TaskbarList interface {
	ClearProgress(window platform.Window) error
	SetOverlayIcon(window platform.Window, icon platform.Icon) error
	Release()
}

// Badger applies unread counts to a window's taskbar button
type Badger interface {
	SetBadge(window platform.Window, count int)
}

// CandidateFunc returns the ordered relative paths for a glyph file
type CandidateFunc func(file string) []string

// Controller implements Badger on top of a Shell
type Controller struct {
	shell      Shell
	icons      IconSource
	candidates CandidateFunc
	logger     logging.Logger
}

// NewController creates a badge controller
func NewController(shell Shell, icons IconSource, candidates CandidateFunc, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Controller{
		shell:      shell,
		icons:      icons,
		candidates: candidates,
		logger:     logger,
	}
}

// SetBadge shows count on window's taskbar button, or clears it for count <= 0.
// Failures are logged, never returned.
func (c *Controller) SetBadge(window platform.Window, count int) {
	start := time.Now()
	sel := SelectGlyph(count)

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Badge update panicked", "count", count, "panic", fmt.Sprint(r))
		}
	}()

	session, err := c.shell.Open()
	if err != nil {
		logging.LogShellError(c.logger, err, "open_shell", map[string]interface{}{"count": count})
		return
	}
	defer session.Close()

	list, err := session.TaskbarList()
	if err != nil {
		logging.LogShellError(c.logger, err, "taskbar_list", map[string]interface{}{"count": count})
		return
	}
	defer list.Release()

	// Progress state is independent of the overlay; a failure here does not block it
	if err := list.ClearProgress(window); err != nil {
		c.logger.Debug("Clearing taskbar progress failed", "window", window.String(), "error", err.Error())
	}

	if sel.State == NoBadge {
		if err := list.SetOverlayIcon(window, 0); err != nil {
			logging.LogShellError(c.logger, err, "clear_overlay", map[string]interface{}{"window": window.String()})
			return
		}
		logging.LogShellOperation(c.logger, "clear_badge", time.Since(start), map[string]interface{}{"count": count})
		return
	}

	icon, ok := c.icons.LoadIconAny(c.candidates(sel.File()))
	if !ok {
		c.logger.Warn("Badge glyph not found, leaving overlay unchanged", "glyph", sel.File(), "count", count)
		return
	}
	defer c.icons.Release(icon)

	if err := list.SetOverlayIcon(window, icon); err != nil {
		logging.LogShellError(c.logger, err, "set_overlay", map[string]interface{}{
			"window": window.String(),
			"glyph":  sel.Name,
		})
		return
	}

	logging.LogShellOperation(c.logger, "set_badge", time.Since(start), map[string]interface{}{
		"count": count,
		"glyph": sel.Name,
		"state": sel.State.String(),
	})
}

// NopBadger ignores every update
type NopBadger struct{}

// SetBadge does nothing
func (NopBadger) SetBadge(platform.Window, int) {}
