//go:build windows

package taskbar

import (
	"errors"
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	apperrors "wgpt/internal/infrastructure/errors"
	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
)

const (
	sFalse          = 0x00000001 // apartment already initialised on this thread
	rpcEChangedMode = 0x80010106 // apartment initialised with another model
)

// comShell acquires a single-threaded COM apartment per Open call
type comShell struct{}

// NewShell returns the Windows shell integration
func NewShell() Shell {
	return comShell{}
}

func (comShell) Open() (Session, error) {
	// The apartment belongs to the OS thread, so the goroutine stays put until Close
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
			// Already initialised here: still counted, still needs CoUninitialize
			return &comSession{}, nil
		}
		runtime.UnlockOSThread()

		code := uintptr(rpcEChangedMode)
		if oleErr != nil {
			code = oleErr.Code()
		}
		return nil, apperrors.HandleShellUnavailable("com_init", code)
	}
	return &comSession{}, nil
}

type comSession struct {
	closed bool
}

func (s *comSession) TaskbarList() (TaskbarList, error) {
	var obj *win.ITaskbarList3
	hr := win.CoCreateInstance(
		&win.CLSID_TaskbarList,
		nil,
		win.CLSCTX_INPROC_SERVER,
		&win.IID_ITaskbarList3,
		(*unsafe.Pointer)(unsafe.Pointer(&obj)),
	)
	if win.FAILED(hr) || obj == nil {
		return nil, apperrors.HandleInterfaceUnavailable("create_taskbar_list", "ITaskbarList3", uintptr(uint32(hr)))
	}

	list := &taskbarList{obj: obj}
	ret, _, _ := syscall.Syscall(obj.LpVtbl.HrInit, 1, uintptr(unsafe.Pointer(obj)), 0, 0)
	if hr := win.HRESULT(ret); win.FAILED(hr) {
		list.Release()
		return nil, apperrors.HandleInterfaceUnavailable("taskbar_list_init", "ITaskbarList3", uintptr(uint32(hr)))
	}
	return list, nil
}

func (s *comSession) Close() {
	if s.closed {
		return
	}
	s.closed = true
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

type taskbarList struct {
	obj *win.ITaskbarList3
}

func (t *taskbarList) ClearProgress(window platform.Window) error {
	if hr := t.obj.SetProgressState(win.HWND(window), win.TBPF_NOPROGRESS); win.FAILED(hr) {
		return apperrors.HandleInterfaceUnavailable("set_progress_state", "ITaskbarList3", uintptr(uint32(hr)))
	}
	return nil
}

func (t *taskbarList) SetOverlayIcon(window platform.Window, icon platform.Icon) error {
	if hr := t.obj.SetOverlayIcon(win.HWND(window), win.HICON(icon), nil); win.FAILED(hr) {
		return apperrors.HandleInterfaceUnavailable("set_overlay_icon", "ITaskbarList3", uintptr(uint32(hr)))
	}
	return nil
}

func (t *taskbarList) Release() {
	if t.obj == nil {
		return
	}
	// ITaskbarList3 starts with the IUnknown vtable
	(*ole.IUnknown)(unsafe.Pointer(t.obj)).Release()
	t.obj = nil
}

// fileIconLoader loads .ico files with LoadImage
type fileIconLoader struct{}

// NewIconLoader returns the Windows icon file loader
func NewIconLoader() IconLoader {
	return fileIconLoader{}
}

func (fileIconLoader) LoadIcon(path string) (platform.Icon, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, apperrors.NewShellError("load_icon", err, apperrors.ErrCodeValidation)
	}
	// cx=cy=0 without LR_DEFAULTSIZE keeps the file's own dimensions
	h := win.LoadImage(0, name, win.IMAGE_ICON, 0, 0, win.LR_LOADFROMFILE)
	if h == 0 {
		return 0, apperrors.HandleResourceMissing("load_icon", path, 1)
	}
	return platform.Icon(h), nil
}

func (fileIconLoader) DestroyIcon(icon platform.Icon) {
	win.DestroyIcon(win.HICON(icon))
}

// NewPlatformBadger wires the COM shell and the file icon loader into a Controller
func NewPlatformBadger(candidates CandidateFunc, logger logging.Logger) Badger {
	return NewController(NewShell(), NewResolver(NewIconLoader(), logger), candidates, logger)
}
