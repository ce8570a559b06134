package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deeptrace/analyze"
	"deeptrace/api"
	"deeptrace/config"
	"deeptrace/service"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// App represents the DeepTrace application with all its components.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger

	Store  *storage.Store
	Engine *analyze.Engine
	Hub    *api.Hub

	APIServer *api.API
}

// NewApp creates a new application instance and initializes all components.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{}

	logger, sugar, err := InitLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger
	app.Sugar = sugar

	sugar.Info("DeepTrace starting...")

	cfg, err := InitConfig(sugar)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	// Load the dataset. A missing or partial data directory is not fatal;
	// absent collections come up empty and are logged by the store.
	provider := storage.NewFileProvider(cfg.Data.Dir, sugar)
	store := storage.NewStore(provider, sugar)
	store.Load()
	app.Store = store

	app.Engine = analyze.NewEngine(
		cfg.Analysis.MinDuration,
		cfg.Analysis.MaxDuration,
		cfg.Analysis.JobTTL,
		cfg.Analysis.MaxJobs,
		sugar,
	)

	app.Hub = api.NewHub(ctx, sugar)
	app.Engine.SetNotifier(app.Hub.BroadcastAnalysis)

	app.APIServer = api.NewAPI(
		service.NewCampaignService(store, sugar),
		service.NewPostService(store, sugar),
		service.NewAccountService(store, sugar),
		service.NewReportService(store, sugar),
		service.NewAnalyticsService(store, sugar),
		app.Engine,
		app.Hub,
		cfg,
		sugar,
	)

	return app, nil
}

// Start starts the websocket hub and the API server.
func (a *App) Start() error {
	go a.Hub.Start()

	addr := fmt.Sprintf(":%d", a.Config.API.Port)
	a.Sugar.Infow("Starting API server", "addr", addr)
	go func() {
		if err := a.APIServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Sugar.Errorw("API server stopped", "error", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// Shutdown gracefully shuts down all components.
func (a *App) Shutdown() {
	a.Sugar.Info("Shutting down...")

	if a.APIServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.APIServer.Stop(ctx); err != nil {
			a.Sugar.Errorw("Failed to stop API server", "error", err)
		}
	}

	if a.Engine != nil {
		a.Engine.Shutdown()
	}

	if a.Hub != nil {
		a.Hub.Stop()
	}

	a.Sugar.Info("Shutdown complete")
	_ = a.Logger.Sync()
}
