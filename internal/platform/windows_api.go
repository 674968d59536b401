//go:build windows

package platform

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	apperrors "wgpt/internal/infrastructure/errors"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW     = user32.NewProc("GetWindowTextW")
	procGetWindowTextLenW  = user32.NewProc("GetWindowTextLengthW")
	procIsWindowVisible    = user32.NewProc("IsWindowVisible")
	procGetWindow          = user32.NewProc("GetWindow")
	enumWindowsCallbackPtr = windows.NewCallback(enumWindowsCallback)
)

const (
	gwOwner   = 4 // GW_OWNER
	iconSmall = 0 // ICON_SMALL
)

// WindowsAPI implements WindowAPI for Windows platform
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for Windows
func NewWindowAPI() WindowAPI {
	return NewWindowsAPI()
}

// enumState is passed through EnumWindows' LPARAM
type enumState struct {
	pid   uint32
	title string
	found windows.HWND
}

func enumWindowsCallback(hwnd windows.HWND, lparam uintptr) uintptr {
	state := (*enumState)(unsafe.Pointer(lparam))

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || pid != state.pid {
		return 1
	}

	// Owned windows (tool windows, popups) never carry the taskbar button
	if owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner); owner != 0 {
		return 1
	}

	if windowText(hwnd) != state.title {
		return 1
	}

	state.found = hwnd
	visible, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
	if visible != 0 {
		return 0 // stop enumeration
	}
	return 1
}

func windowText(hwnd windows.HWND) string {
	n, _, _ := procGetWindowTextLenW.Call(uintptr(hwnd))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

// FindAppWindow scans the top-level windows owned by this process for one titled title.
// A visible match is preferred; otherwise the last hidden match is returned.
func (w *WindowsAPI) FindAppWindow(title string) (Window, error) {
	state := &enumState{
		pid:   uint32(os.Getpid()),
		title: title,
	}

	// EnumWindows reports an error when the callback stops early; the result lives in state
	_ = windows.EnumWindows(enumWindowsCallbackPtr, unsafe.Pointer(state))

	if state.found == 0 {
		return 0, apperrors.HandleWindowNotFound("find_window", title)
	}
	return Window(state.found), nil
}

// SetTitleBarIcon sends icon as the window's small icon
func (w *WindowsAPI) SetTitleBarIcon(window Window, icon Icon) error {
	if window == 0 {
		return apperrors.HandleWindowNotFound("set_titlebar_icon", "")
	}
	if icon == 0 {
		return apperrors.NewShellError("set_titlebar_icon", syscall.EINVAL, apperrors.ErrCodeValidation)
	}

	win.SendMessage(win.HWND(window), win.WM_SETICON, iconSmall, uintptr(icon))
	return nil
}
