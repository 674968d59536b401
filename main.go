package main

import (
	"embed"
	"log"
	"os"

	"wgpt/internal/app"
	"wgpt/internal/config"
	"wgpt/internal/infrastructure/errors"
	"wgpt/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load(os.Getenv("WGPT_ENVIRONMENT"))
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logging.NewLeveledLogger(cfg.LogLevel)
	errors.UseLogger(appLogger)

	// Create an instance of the app structure
	application, err := app.NewApp(cfg, appLogger)
	if err != nil {
		log.Fatal(err)
	}

	logLevel := logger.INFO
	if cfg.IsDevelopment() {
		logLevel = logger.DEBUG
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:             cfg.Title,
		Width:             cfg.Width,
		Height:            cfg.Height,
		MinWidth:          cfg.MinWidth,
		MinHeight:         cfg.MinHeight,
		DisableResize:     false,
		Fullscreen:        false,
		Frameless:         false,
		StartHidden:       false,
		HideWindowOnClose: false,
		BackgroundColour:  &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             nil,
		Logger:           logging.NewWailsLoggerAdapter(appLogger),
		LogLevel:         logLevel,
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
			WebviewUserDataPath:  "",
			ZoomFactor:           1.0,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar: mac.TitleBarDefault(),
			About: &mac.AboutInfo{
				Title:   cfg.Title,
				Message: "",
			},
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
