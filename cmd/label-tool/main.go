package main

import (
	"log"
	"os"
	"runtime"

	"label-tool/internal/config"
	"label-tool/internal/controllers"
	"label-tool/internal/logger"
	"label-tool/internal/opencv"
	"label-tool/internal/services"
	"label-tool/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
)

const (
	AppName    = "label_tool"
	AppID      = "com.imagelabeling.label-tool"
	AppVersion = "1.0.0"

	WindowWidth  = 1900
	WindowHeight = 800
)

// Application wires the Fyne window to the labeling session controller
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.SessionController
	view       *views.MainView
}

func main() {
	appLogger := logger.NewConsoleLogger(determineLogLevel())

	configPath := determineConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	application := NewApplication(cfg, appLogger)
	application.Run()
}

// NewApplication builds services, controller and view for the given labels
func NewApplication(cfg *config.Config, appLogger logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info("Application", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"labels":     len(cfg.Labels),
	})

	directories := services.NewDirectoryService(appLogger)
	labels := services.NewLabelStore(appLogger)
	images := services.NewImageService(opencv.NewDecoder(), appLogger)

	controller := controllers.NewSessionController(cfg, directories, labels, images, appLogger)
	view := views.NewMainView(window, cfg.Labels, appLogger)

	// Wire view events to controller actions
	controller.SetView(view)
	view.SetOpenDirectoryHandler(controller.OpenDirectory)
	view.SetPreviousHandler(controller.Previous)
	view.SetNextHandler(controller.Next)
	view.SetLabelHandler(controller.RecordLabel)
	view.SetFileHandler(controller.SelectFile)

	window.SetOnClosed(func() {
		appLogger.Info("Application", "window closed", nil)
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
	}
}

// Run shows the window and blocks in the Fyne event loop
func (a *Application) Run() {
	a.view.Show()
	a.fyneApp.Run()
	a.logger.Info("Application", "application terminated", nil)
}

// determineConfigPath returns LABEL_TOOL_CONFIG or config.yaml in the working directory
func determineConfigPath() string {
	if path := os.Getenv("LABEL_TOOL_CONFIG"); path != "" {
		return path
	}
	return config.DefaultPath
}

// determineLogLevel determines appropriate log level from environment
func determineLogLevel() zerolog.Level {
	if os.Getenv("DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return logger.ParseLevel(os.Getenv("LOG_LEVEL"))
}
