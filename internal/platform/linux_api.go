//go:build linux

package platform

import (
	apperrors "wgpt/internal/infrastructure/errors"
)

// LinuxAPI implements WindowAPI for Linux platform.
// The taskbar overlay is a Windows shell feature, so both operations report unsupported.
type LinuxAPI struct{}

// NewLinuxAPI creates a new Linux API instance
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for Linux
func NewWindowAPI() WindowAPI {
	return NewLinuxAPI()
}

// FindAppWindow is not available on Linux
func (l *LinuxAPI) FindAppWindow(title string) (Window, error) {
	return 0, apperrors.HandleUnsupported("find_window", "linux")
}

// SetTitleBarIcon is not available on Linux; the window manager owns the title bar
func (l *LinuxAPI) SetTitleBarIcon(window Window, icon Icon) error {
	return apperrors.HandleUnsupported("set_titlebar_icon", "linux")
}
