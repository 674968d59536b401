package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeHandleUnavailable, "HANDLE_UNAVAILABLE"},
		{ErrCodeShellUnavailable, "SHELL_UNAVAILABLE"},
		{ErrCodeInterfaceUnavailable, "INTERFACE_UNAVAILABLE"},
		{ErrCodeNotFound, "NOT_FOUND"},
		{ErrCodeValidation, "VALIDATION"},
		{ErrCodeConfig, "CONFIG"},
		{ErrCodeTimeout, "TIMEOUT"},
		{ErrCodeUnsupported, "UNSUPPORTED"},
		{ErrCodeInternal, "INTERNAL"},
		{ErrCodeUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.String(); got != tt.expected {
				t.Errorf("ErrorCode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShellError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ShellError
		expected string
	}{
		{
			name:     "op and code",
			err:      &ShellError{Op: "set_badge", Err: errors.New("boom"), Code: ErrCodeInternal},
			expected: "boom [op=set_badge code=INTERNAL]",
		},
		{
			name: "sorted context",
			err: &ShellError{
				Op:        "find_window",
				Err:       ErrWindowNotFound,
				Code:      ErrCodeHandleUnavailable,
				Retryable: true,
				Context:   map[string]string{"title": "WhatsappGPT", "pid": "42"},
			},
			expected: "window handle not available [op=find_window code=HANDLE_UNAVAILABLE retryable=true pid=42 title=WhatsappGPT]",
		},
		{
			name:     "no underlying error",
			err:      &ShellError{},
			expected: "shell error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShellError_IsAndUnwrap(t *testing.T) {
	err := HandleWindowNotFound("find_window", "WhatsappGPT")

	if !errors.Is(err, ErrWindowNotFound) {
		t.Error("Expected errors.Is to reach the sentinel cause")
	}
	if !errors.Is(err, &ShellError{Code: ErrCodeHandleUnavailable}) {
		t.Error("Expected errors.Is to match by code")
	}
	if errors.Is(err, &ShellError{Code: ErrCodeValidation}) {
		t.Error("Expected code mismatch to fail")
	}

	wrapped := fmt.Errorf("startup: %w", err)
	if !IsHandleUnavailable(wrapped) {
		t.Error("Expected classification through fmt wrapping")
	}
}

func TestShellError_NilReceiverGuards(t *testing.T) {
	var nilErr *ShellError

	if nilErr.Unwrap() != nil {
		t.Error("Expected nil.Unwrap() to return nil")
	}
	if nilErr.IsRetryable() {
		t.Error("Expected nil.IsRetryable() to return false")
	}
	if code := nilErr.GetCode(); code != "UNKNOWN" {
		t.Errorf("Expected nil.GetCode() to return UNKNOWN, got %v", code)
	}
	if ctx := nilErr.GetContext(); ctx == nil || len(ctx) != 0 {
		t.Errorf("Expected empty non-nil context, got %v", ctx)
	}
	if !nilErr.GetTimestamp().IsZero() {
		t.Error("Expected zero timestamp")
	}
	if nilErr.Error() != "shell error" {
		t.Errorf("Expected nil.Error() to return 'shell error', got %v", nilErr.Error())
	}
	if nilErr.Is(ErrWindowNotFound) {
		t.Error("Expected nil.Is() to return false")
	}
}

func TestNewShellErrorWithContext_ClonesContext(t *testing.T) {
	original := map[string]string{"glyph": "5"}

	err := NewShellErrorWithContext("load_icon", ErrResourceMissing, ErrCodeNotFound, original)
	original["glyph"] = "9+"
	original["extra"] = "x"

	if err.Context["glyph"] != "5" {
		t.Errorf("Expected cloned context to keep glyph=5, got %v", err.Context["glyph"])
	}
	if _, exists := err.Context["extra"]; exists {
		t.Error("Expected cloned context to ignore later additions")
	}

	nilCtx := NewShellErrorWithContext("load_icon", nil, ErrCodeNotFound, nil)
	if nilCtx.Context == nil {
		t.Error("Expected non-nil context when nil is passed")
	}
}

func TestWithContext_MutationSemantics(t *testing.T) {
	err1 := NewShellError("set_badge", nil, ErrCodeInternal)
	err2 := err1.WithContext("count", "3").WithContext("glyph", "3")

	if err1 != err2 {
		t.Error("Expected WithContext to return the same instance")
	}
	if len(err1.Context) != 2 {
		t.Errorf("Expected 2 context keys, got %d", len(err1.Context))
	}
}

func TestErrorClassificationFunctions(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"handle", HandleWindowNotFound("op", "t"), IsHandleUnavailable},
		{"shell", HandleShellUnavailable("op", 0x8001010E), IsShellUnavailable},
		{"interface", HandleInterfaceUnavailable("op", "ITaskbarList3", 0x80004002), IsInterfaceUnavailable},
		{"not found", HandleResourceMissing("op", "5.ico", 2), IsNotFound},
		{"validation", HandleInvalidCount("op", -4), IsValidation},
		{"config", HandleConfigError("op", "Width", "must be positive"), IsConfig},
		{"unsupported", HandleUnsupported("op", "plan9"), IsUnsupported},
		{"timeout", Wrap("op", context.DeadlineExceeded), IsTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("classification failed for %v", tt.err)
			}
			if tt.check(errors.New("plain")) {
				t.Error("plain error must not classify")
			}
		})
	}
}

func TestHandleShellUnavailable_FormatsHResult(t *testing.T) {
	err := HandleShellUnavailable("com_init", 0x80010106)
	if !strings.Contains(err.Error(), "hresult=0x80010106") {
		t.Errorf("Expected hresult in message, got %q", err.Error())
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{"nil", nil, ErrCodeUnknown},
		{"sentinel window", fmt.Errorf("x: %w", ErrWindowNotFound), ErrCodeHandleUnavailable},
		{"sentinel count", ErrNegativeCount, ErrCodeValidation},
		{"sentinel unsupported", ErrUnsupported, ErrCodeUnsupported},
		{"canceled", context.Canceled, ErrCodeTimeout},
		{"shell error keeps code", NewShellError("op", nil, ErrCodeConfig), ErrCodeConfig},
		{"plain", errors.New("plain"), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.expected {
				t.Errorf("ClassifyError() = %v, want %v", got, tt.expected)
			}
		})
	}

	if Wrap("op", nil) != nil {
		t.Error("Expected Wrap(nil) to return nil")
	}
}

func TestIsRetryableError_Heuristics(t *testing.T) {
	tests := []struct {
		msg         string
		expectRetry bool
	}{
		{"temporary failure", true},
		{"please RETRY later", true},
		{"shell is busy", true},
		{"window not ready", true},
		{"access is denied", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := isRetryableError(ErrCodeUnknown, errors.New(tt.msg)); got != tt.expectRetry {
				t.Errorf("isRetryableError(%q) = %v, expected %v", tt.msg, got, tt.expectRetry)
			}
		})
	}

	if !IsRetryable(HandleWindowNotFound("op", "t")) {
		t.Error("Expected missing window to be retryable")
	}
	if IsRetryable(HandleInvalidCount("op", -1)) {
		t.Error("Expected validation to be non-retryable")
	}
}
