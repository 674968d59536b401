package app

import (
	"strings"
	"testing"
	"time"

	"wgpt/internal/config"
)

func TestRenderOverlay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TitlePollInterval = 2 * time.Second

	script, err := RenderOverlay(cfg)
	if err != nil {
		t.Fatalf("RenderOverlay() error = %v", err)
	}

	for _, want := range []string{
		"const POLL_MS = 2000;",
		"const MIN_WIDTH = 70;",
		`const BINDING = "app.App.ReportTitle";`,
		`const REPORT = "ReportTitle";`,
		"wgptWidth",
		"wgptBg",
		"wgptStroke",
		"wgptOpen",
		"MutationObserver",
		`meta[name="wgpt-bootstrap"]`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("overlay script missing %q", want)
		}
	}
	if strings.Contains(script, "{{") {
		t.Error("overlay script has unexpanded template actions")
	}
}
