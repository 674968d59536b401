//go:build !windows

package taskbar

import (
	"testing"

	apperrors "wgpt/internal/infrastructure/errors"
	"wgpt/internal/testutils"
)

func TestNewShell_UnsupportedOffWindows(t *testing.T) {
	session, err := NewShell().Open()
	if session != nil {
		t.Error("Expected no session")
	}
	if !apperrors.IsUnsupported(err) {
		t.Errorf("Expected unsupported error, got %v", err)
	}
}

func TestNewIconLoader_UnsupportedOffWindows(t *testing.T) {
	if _, err := NewIconLoader().LoadIcon("icons/badges/1.ico"); !apperrors.IsUnsupported(err) {
		t.Errorf("Expected unsupported error, got %v", err)
	}
}

func TestNewPlatformBadger_IsNop(t *testing.T) {
	b := NewPlatformBadger(glyphPaths, &testutils.RecordingLogger{})
	if _, ok := b.(NopBadger); !ok {
		t.Errorf("Expected NopBadger, got %T", b)
	}
}
