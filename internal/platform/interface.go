package platform

import "fmt"

// Window is a borrowed native top-level window handle (HWND on Windows).
// It is owned by the window host and never freed here.
type Window uintptr

// Icon is a native icon handle (HICON on Windows). Zero means "no icon".
type Icon uintptr

func (w Window) String() string {
	return fmt.Sprintf("0x%X", uintptr(w))
}

// WindowAPI defines the platform-specific operations the shell needs on its own window
type WindowAPI interface {
	// FindAppWindow returns the top-level window of this process with the given title
	FindAppWindow(title string) (Window, error)
	// SetTitleBarIcon sends icon as the window's small (title bar) icon
	SetTitleBarIcon(window Window, icon Icon) error
}
