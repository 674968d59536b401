package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies failures of the native shell integration and the page bridge
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeHandleUnavailable
	ErrCodeShellUnavailable
	ErrCodeInterfaceUnavailable
	ErrCodeNotFound
	ErrCodeValidation
	ErrCodeConfig
	ErrCodeTimeout
	ErrCodeUnsupported
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeHandleUnavailable:
		return "HANDLE_UNAVAILABLE"
	case ErrCodeShellUnavailable:
		return "SHELL_UNAVAILABLE"
	case ErrCodeInterfaceUnavailable:
		return "INTERFACE_UNAVAILABLE"
	case ErrCodeNotFound:
		return "NOT_FOUND"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeConfig:
		return "CONFIG"
	case ErrCodeTimeout:
		return "TIMEOUT"
	case ErrCodeUnsupported:
		return "UNSUPPORTED"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// ShellError is a classified error with the operation that produced it
type ShellError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Retryable bool              // whether the error is retryable
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *ShellError) Error() string {
	if e == nil {
		return "shell error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if e.Retryable {
		parts = append(parts, "retryable=true")
	}

	// Context keys in deterministic order
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "shell error" + contextStr
}

func (e *ShellError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *ShellError by code, or the wrapped error
func (e *ShellError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ShellError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *ShellError) IsRetryable() bool {
	if e == nil {
		return false
	}
	return e.Retryable
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *ShellError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *ShellError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *ShellError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been shared with other goroutines.
func (e *ShellError) WithContext(key, value string) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewShellError creates a new shell error with the given parameters
func NewShellError(op string, err error, code ErrorCode) *ShellError {
	return &ShellError{
		Op:        op,
		Err:       err,
		Code:      code,
		Retryable: isRetryableError(code, err),
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewShellErrorWithContext creates a new shell error with a copy of the given context
func NewShellErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *ShellError {
	shellErr := NewShellError(op, err, code)
	if context != nil {
		shellErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			shellErr.Context[k] = v
		}
	}
	return shellErr
}

// isRetryableError determines if an error is retryable based on its type.
// A missing window handle is retryable: the host creates its window after startup hooks run.
func isRetryableError(code ErrorCode, err error) bool {
	switch code {
	case ErrCodeHandleUnavailable, ErrCodeTimeout:
		return true
	case ErrCodeShellUnavailable, ErrCodeInterfaceUnavailable, ErrCodeNotFound,
		ErrCodeValidation, ErrCodeConfig, ErrCodeUnsupported, ErrCodeInternal:
		return false
	default:
		if err != nil {
			errStr := strings.ToLower(err.Error())
			return strings.Contains(errStr, "temporary") ||
				strings.Contains(errStr, "retry") ||
				strings.Contains(errStr, "busy") ||
				strings.Contains(errStr, "not ready")
		}
		return false
	}
}

func hasCode(err error, code ErrorCode) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == code
	}
	return false
}

// IsHandleUnavailable reports whether the native window handle could not be obtained
func IsHandleUnavailable(err error) bool { return hasCode(err, ErrCodeHandleUnavailable) }

// IsShellUnavailable reports whether the shell integration context could not be acquired
func IsShellUnavailable(err error) bool { return hasCode(err, ErrCodeShellUnavailable) }

// IsInterfaceUnavailable reports whether a shell interface could not be created
func IsInterfaceUnavailable(err error) bool { return hasCode(err, ErrCodeInterfaceUnavailable) }

// IsNotFound reports whether a resource (icon, glyph) was absent from every location
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsValidation reports whether inbound input was rejected
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsConfig reports whether configuration was invalid
func IsConfig(err error) bool { return hasCode(err, ErrCodeConfig) }

// IsTimeout reports whether an operation timed out
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsUnsupported reports whether the platform lacks the capability
func IsUnsupported(err error) bool { return hasCode(err, ErrCodeUnsupported) }

// IsRetryable checks if the error is retryable
func IsRetryable(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Retryable
	}
	return false
}
