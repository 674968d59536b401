package platform

import "testing"

func TestWindow_String(t *testing.T) {
	tests := []struct {
		window   Window
		expected string
	}{
		{0, "0x0"},
		{0x1A2B, "0x1A2B"},
	}

	for _, tt := range tests {
		if got := tt.window.String(); got != tt.expected {
			t.Errorf("Window(%d).String() = %q, want %q", uintptr(tt.window), got, tt.expected)
		}
	}
}

func TestNewWindowAPI(t *testing.T) {
	if NewWindowAPI() == nil {
		t.Fatal("NewWindowAPI returned nil")
	}
}
