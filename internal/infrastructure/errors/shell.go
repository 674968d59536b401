package errors

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel causes wrapped by the constructors below
var (
	ErrWindowNotFound   = errors.New("window handle not available")
	ErrShellUnavailable = errors.New("shell integration unavailable")
	ErrNoInterface      = errors.New("shell interface unavailable")
	ErrResourceMissing  = errors.New("resource not found")
	ErrNegativeCount    = errors.New("badge count must not be negative")
	ErrUnsupported      = errors.New("not supported on this platform")
)

// ClassifyError maps an arbitrary error onto an ErrorCode
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}

	switch {
	case errors.Is(err, ErrWindowNotFound):
		return ErrCodeHandleUnavailable
	case errors.Is(err, ErrShellUnavailable):
		return ErrCodeShellUnavailable
	case errors.Is(err, ErrNoInterface):
		return ErrCodeInterfaceUnavailable
	case errors.Is(err, ErrResourceMissing):
		return ErrCodeNotFound
	case errors.Is(err, ErrNegativeCount):
		return ErrCodeValidation
	case errors.Is(err, ErrUnsupported):
		return ErrCodeUnsupported
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrCodeTimeout
	default:
		return ErrCodeUnknown
	}
}

// Wrap classifies err and wraps it for op. Returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return NewShellError(op, err, ClassifyError(err))
}

// HandleWindowNotFound reports that no top-level window with the title exists yet
func HandleWindowNotFound(op string, title string) error {
	return NewShellErrorWithContext(op, ErrWindowNotFound, ErrCodeHandleUnavailable, map[string]string{
		"title": title,
	})
}

// HandleShellUnavailable reports a failed apartment initialisation
func HandleShellUnavailable(op string, hresult uintptr) error {
	return NewShellErrorWithContext(op, ErrShellUnavailable, ErrCodeShellUnavailable, map[string]string{
		"hresult": fmt.Sprintf("0x%08X", uint32(hresult)),
	})
}

// HandleInterfaceUnavailable reports a failed CoCreateInstance for the named interface
func HandleInterfaceUnavailable(op string, iface string, hresult uintptr) error {
	return NewShellErrorWithContext(op, ErrNoInterface, ErrCodeInterfaceUnavailable, map[string]string{
		"interface": iface,
		"hresult":   fmt.Sprintf("0x%08X", uint32(hresult)),
	})
}

// HandleResourceMissing reports that none of the candidate paths produced a resource
func HandleResourceMissing(op string, resource string, candidates int) error {
	return NewShellErrorWithContext(op, ErrResourceMissing, ErrCodeNotFound, map[string]string{
		"resource":   resource,
		"candidates": strconv.Itoa(candidates),
	})
}

// HandleInvalidCount rejects a badge count from the page bridge
func HandleInvalidCount(op string, count int) error {
	return NewShellErrorWithContext(op, ErrNegativeCount, ErrCodeValidation, map[string]string{
		"count": strconv.Itoa(count),
	})
}

// HandleConfigError reports an invalid configuration field
func HandleConfigError(op string, field string, reason string) error {
	return NewShellErrorWithContext(op, errors.New("invalid configuration"), ErrCodeConfig, map[string]string{
		"field":  field,
		"reason": reason,
	})
}

// HandleUnsupported reports a capability missing on the running platform
func HandleUnsupported(op string, goos string) error {
	return NewShellErrorWithContext(op, ErrUnsupported, ErrCodeUnsupported, map[string]string{
		"goos": goos,
	})
}
