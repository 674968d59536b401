//go:build !windows

package taskbar

import (
	"runtime"

	apperrors "wgpt/internal/infrastructure/errors"
	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
)

type unsupportedShell struct{}

// NewShell returns a shell that is never available off Windows
func NewShell() Shell {
	return unsupportedShell{}
}

func (unsupportedShell) Open() (Session, error) {
	return nil, apperrors.HandleUnsupported("open_shell", runtime.GOOS)
}

type unsupportedLoader struct{}

// NewIconLoader returns a loader that never produces native icons off Windows
func NewIconLoader() IconLoader {
	return unsupportedLoader{}
}

func (unsupportedLoader) LoadIcon(path string) (platform.Icon, error) {
	return 0, apperrors.HandleUnsupported("load_icon", runtime.GOOS)
}

func (unsupportedLoader) DestroyIcon(platform.Icon) {}

// NewPlatformBadger returns a badger that does nothing; the overlay is a Windows taskbar feature
func NewPlatformBadger(candidates CandidateFunc, logger logging.Logger) Badger {
	return NopBadger{}
}
