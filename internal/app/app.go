// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/tejashwikalptaru/aboutdocs/internal/adapter/eventbus"
	"github.com/tejashwikalptaru/aboutdocs/internal/adapter/filesystem"
	"github.com/tejashwikalptaru/aboutdocs/internal/adapter/markdown"
	"github.com/tejashwikalptaru/aboutdocs/internal/adapter/repository/memory"
	fyneui "github.com/tejashwikalptaru/aboutdocs/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/logger"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
	"github.com/tejashwikalptaru/aboutdocs/internal/service"
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
type Application struct {
	// Core dependencies
	logger  *slog.Logger
	fyneApp fyne.App

	// Infrastructure
	eventBus  ports.EventBus
	locator   ports.DocumentLocator
	converter *markdown.Converter
	cache     ports.ContentCache

	// Services
	documentService *service.DocumentService

	// UI
	presenter   *fyneui.AboutPresenter
	aboutWindow *fyneui.AboutWindow

	auditSub     domain.SubscriptionID
	shutdownOnce sync.Once
}

// NewApplication creates a new application with all dependencies wired.
// This is the main dependency injection function.
func NewApplication(config Config) (*Application, error) {
	app := &Application{}

	// Step 1: Create logger
	app.logger = logger.NewLogger(logger.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
	})
	app.logger.Info("initializing application",
		slog.String("app_id", config.AppID),
		slog.String("version", GetVersionInfo().FullString()),
		slog.String("base_dir", config.BaseDir))

	// Step 2: Create the document locator
	locator, err := filesystem.NewLocator(config.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create document locator: %w", err)
	}
	app.locator = locator

	// Step 3: Create Fyne application
	if config.TestFyneApp != nil {
		app.fyneApp = config.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(config.AppID)
	}

	// Step 4: Create an event bus with an audit log of document events
	syncBus := eventbus.NewSyncEventBus()
	syncBus.SetLogger(app.logger.With(slog.String("component", "eventbus")))
	app.eventBus = syncBus
	app.auditSub = app.eventBus.SubscribeAll(app.logEvent)

	// Step 5: Create the Markdown converter and the render-once cache
	app.converter = markdown.NewConverter(markdownOptions(config.Markdown)...)
	app.cache = memory.NewContentCache(app.logger.With(slog.String("component", "cache")))

	// Step 6: Create services
	app.documentService = service.NewDocumentService(
		app.logger.With(slog.String("service", "document")),
		app.locator,
		app.converter,
		app.eventBus,
	)

	// Step 7: Create UI
	app.aboutWindow = fyneui.NewAboutWindow(
		app.fyneApp,
		config.ProductInfo(),
		config.DocumentReferences(),
		app.converter,
		app.eventBus,
		app.logger.With(slog.String("component", "window")),
	)

	// Step 8: Create Presenter and wire with UI
	app.presenter = fyneui.NewAboutPresenter(
		app.logger.With(slog.String("component", "presenter")),
		app.documentService,
		app.cache,
		app.aboutWindow,
	)
	app.aboutWindow.SetPresenter(app.presenter)

	return app, nil
}

// markdownOptions maps the markdown config section to converter options.
func markdownOptions(cfg MarkdownConfig) []markdown.Option {
	var opts []markdown.Option
	if cfg.HardWraps {
		opts = append(opts, markdown.WithHardWraps())
	}
	if cfg.HeadingIDs {
		opts = append(opts, markdown.WithHeadingIDs())
	}
	return opts
}

// logEvent writes every published event to the debug log.
func (a *Application) logEvent(event domain.Event) {
	attrs := []any{slog.String("event_type", string(event.Type()))}

	switch e := event.(type) {
	case domain.DocumentRenderedEvent:
		attrs = append(attrs, slog.String("path", e.Path), slog.String("kind", e.Kind.String()))
	case domain.DocumentMissingEvent:
		attrs = append(attrs, slog.String("path", e.Path), slog.Any("error", e.Err))
	case domain.DocumentDegradedEvent:
		attrs = append(attrs, slog.String("path", e.Path), slog.Any("error", e.Err))
	case domain.ResourceRewrittenEvent:
		attrs = append(attrs, slog.String("source", e.Original), slog.String("resolved", e.Resolved))
	}

	a.logger.Debug("document event", attrs...)
}

// Run shows the About window. It blocks until the window is closed.
func (a *Application) Run() {
	a.logger.Info("about dialog started")
	a.aboutWindow.ShowAndRun()
}

// Shutdown releases rendered documents and the event bus.
// It's safe to call multiple times.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down application")

		if a.presenter != nil {
			a.presenter.Shutdown()
		}

		if a.eventBus != nil {
			a.eventBus.Unsubscribe(a.auditSub)
			if err := a.eventBus.Close(); err != nil {
				a.logger.Warn("failed to close event bus", slog.Any("error", err))
			}
		}

		a.logger.Info("application shutdown complete")
	})
}

// GetDocumentService returns the document service.
func (a *Application) GetDocumentService() *service.DocumentService {
	return a.documentService
}

// GetEventBus returns the event bus.
func (a *Application) GetEventBus() ports.EventBus {
	return a.eventBus
}

// GetFyneApp returns the Fyne application.
func (a *Application) GetFyneApp() fyne.App {
	return a.fyneApp
}

// GetAboutWindow returns the About window.
func (a *Application) GetAboutWindow() *fyneui.AboutWindow {
	return a.aboutWindow
}

// GetPresenter returns the About presenter.
func (a *Application) GetPresenter() *fyneui.AboutPresenter {
	return a.presenter
}
