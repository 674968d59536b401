//go:build darwin

package platform

import (
	apperrors "wgpt/internal/infrastructure/errors"
)

// DarwinAPI implements WindowAPI for macOS platform
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS API instance
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for macOS
func NewWindowAPI() WindowAPI {
	return NewDarwinAPI()
}

// FindAppWindow is not available on macOS. The Dock badge is a different API.
func (d *DarwinAPI) FindAppWindow(title string) (Window, error) {
	return 0, apperrors.HandleUnsupported("find_window", "darwin")
}

// SetTitleBarIcon is not available on macOS
func (d *DarwinAPI) SetTitleBarIcon(window Window, icon Icon) error {
	return apperrors.HandleUnsupported("set_titlebar_icon", "darwin")
}
