package app

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"wgpt/internal/config"
	"wgpt/internal/infrastructure/errors"
)

//go:embed overlay.js
var overlaySource string

// OverlayMinWidth is the narrowest the side panel can be dragged
const OverlayMinWidth = 70

// reportBinding is the bound name of App.ReportTitle as seen by the page
const reportBinding = "app.App.ReportTitle"

var overlayTemplate = template.Must(template.New("overlay").Parse(overlaySource))

type overlayData struct {
	PollMillis   int64
	MinWidth     int
	Binding      string
	ReportMethod string
}

// RenderOverlay returns the overlay script configured for cfg
func RenderOverlay(cfg *config.Config) (string, error) {
	binding, _ := json.Marshal(reportBinding)
	method, _ := json.Marshal(reportBinding[strings.LastIndex(reportBinding, ".")+1:])

	data := overlayData{
		PollMillis:   cfg.TitlePollInterval.Milliseconds(),
		MinWidth:     OverlayMinWidth,
		Binding:      string(binding),
		ReportMethod: string(method),
	}

	var b strings.Builder
	if err := overlayTemplate.Execute(&b, data); err != nil {
		return "", errors.NewShellError("render_overlay", fmt.Errorf("execute template: %w", err), errors.ErrCodeInternal)
	}
	return b.String(), nil
}
