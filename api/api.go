// Package api DeepTrace API
//
//	@title			DeepTrace API
//	@version		1.0
//	@description	API for browsing detected disinformation campaigns, posts, accounts and reports
//
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
//
// @host		localhost:8000
// @BasePath	/
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"deeptrace/analyze"
	"deeptrace/config"
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterEntry holds a rate limiter with last seen time
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// CampaignProvider serves the campaign views.
type CampaignProvider interface {
	List(f *core.CampaignFilters) (*service.CampaignList, error)
	Get(id string) (*service.CampaignDetail, error)
	GetPosts(id string, page, limit int, sortBy string) (*service.CampaignPosts, error)
	GetAccounts(id string) (*service.CampaignAccounts, error)
}

// PostProvider serves the cross-campaign post listing.
type PostProvider interface {
	List(f *core.PostFilters) (*service.PostList, error)
}

// AccountProvider serves the monitored-account listing.
type AccountProvider interface {
	List(f *core.AccountFilters) (*service.AccountList, error)
}

// ReportProvider serves intelligence reports.
type ReportProvider interface {
	List(f *core.ReportFilters) (*service.ReportList, error)
	Get(id string) (*query.ReportDetail, error)
}

// AnalyticsProvider serves the dashboard analytics views.
type AnalyticsProvider interface {
	Overview() (*service.Overview, error)
	Threats(period string) (*service.ThreatAnalytics, error)
}

// AnalysisRunner starts and polls asynchronous analysis jobs.
type AnalysisRunner interface {
	Start(req analyze.Request) analyze.Job
	Get(id string) (analyze.Job, error)
}

// API holds the HTTP server, its routes and middleware state.
type API struct {
	router    *mux.Router
	server    *http.Server
	campaigns CampaignProvider
	posts     PostProvider
	accounts  AccountProvider
	reports   ReportProvider
	analytics AnalyticsProvider
	analyzer  AnalysisRunner
	hub       *Hub
	config    *config.Config
	logger    *zap.SugaredLogger

	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}
}

// NewAPI creates a new API server
func NewAPI(campaigns CampaignProvider, posts PostProvider, accounts AccountProvider, reports ReportProvider, analytics AnalyticsProvider, analyzer AnalysisRunner, hub *Hub, cfg *config.Config, logger *zap.SugaredLogger) *API {
	api := &API{
		router:       mux.NewRouter(),
		campaigns:    campaigns,
		posts:        posts,
		accounts:     accounts,
		reports:      reports,
		analytics:    analytics,
		analyzer:     analyzer,
		hub:          hub,
		config:       cfg,
		logger:       logger,
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
	}
	api.setupRoutes()
	go api.cleanupRateLimiters()
	return api
}

// setupRoutes sets up the API routes
func (a *API) setupRoutes() {
	a.router.Use(a.corsMiddleware)
	a.router.Use(a.rateLimitMiddleware)
	a.router.Use(a.observeMiddleware)

	a.router.HandleFunc("/", a.getRoot).Methods("GET")
	a.router.HandleFunc("/health", a.healthCheck).Methods("GET")

	a.router.HandleFunc("/api/campaigns", a.getCampaigns).Methods("GET")
	a.router.HandleFunc("/api/campaigns/{id}", a.getCampaign).Methods("GET")
	a.router.HandleFunc("/api/campaigns/{id}/posts", a.getCampaignPosts).Methods("GET")
	a.router.HandleFunc("/api/campaigns/{id}/accounts", a.getCampaignAccounts).Methods("GET")
	a.router.HandleFunc("/api/posts", a.getPosts).Methods("GET")
	a.router.HandleFunc("/api/accounts", a.getAccounts).Methods("GET")
	a.router.HandleFunc("/api/reports", a.getReports).Methods("GET")
	a.router.HandleFunc("/api/reports/{id}", a.getReport).Methods("GET")
	a.router.HandleFunc("/api/analytics/overview", a.getAnalyticsOverview).Methods("GET")
	a.router.HandleFunc("/api/analytics/threats", a.getThreatAnalytics).Methods("GET")
	a.router.HandleFunc("/api/analyze", a.startAnalysis).Methods("POST")
	a.router.HandleFunc("/api/analyze/{id}", a.getAnalysis).Methods("GET")
	a.router.HandleFunc("/api/ws", a.serveWebSocket).Methods("GET")

	a.router.Handle("/metrics", promhttp.Handler())
}

// Router exposes the configured router, mainly for tests.
func (a *API) Router() http.Handler {
	return a.router
}

// Start starts the API server
func (a *API) Start(addr string) error {
	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a.server.ListenAndServe()
}

// Stop stops the API server
func (a *API) Stop(ctx context.Context) error {
	close(a.stopCh)
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}
