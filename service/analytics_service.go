package service

import (
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// AnalyticsService computes the dashboard overview and threat analytics
// views over the full (unfiltered) dataset.
type AnalyticsService struct {
	store  Datastore
	logger *zap.SugaredLogger
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(store Datastore, logger *zap.SugaredLogger) *AnalyticsService {
	if store == nil {
		panic("store is required")
	}
	return &AnalyticsService{store: store, logger: logger}
}

// OverviewStats are the headline numbers on the dashboard homepage.
type OverviewStats struct {
	TotalCampaigns         int `json:"total_campaigns"`
	ActiveThreats          int `json:"active_threats"`
	HighRiskCampaigns      int `json:"high_risk_campaigns"`
	TotalAccountsMonitored int `json:"total_accounts_monitored"`
	TotalPostsAnalyzed     int `json:"total_posts_analyzed"`
	BotAccountsDetected    int `json:"bot_accounts_detected"`
}

// ActivityWindow is the recent-activity counter block for one window.
type ActivityWindow struct {
	NewCampaigns int `json:"new_campaigns"`
	NewPosts     int `json:"new_posts"`
	NewAccounts  int `json:"new_accounts"`
}

// TrendPoint is one day of the dashboard trend chart.
type TrendPoint struct {
	Date      string `json:"date"`
	Campaigns int    `json:"campaigns"`
	Posts     int    `json:"posts"`
}

// Overview is the full analytics payload for the dashboard homepage.
type Overview struct {
	Stats              OverviewStats                 `json:"stats"`
	ThreatDistribution query.ThreatDistribution      `json:"threat_distribution"`
	PlatformBreakdown  []query.PlatformCampaignCount `json:"platform_breakdown"`
	RecentActivity     map[string]ActivityWindow     `json:"recent_activity"`
	TrendData          []TrendPoint                  `json:"trend_data"`
}

// Canned demo blocks. Recent-activity and trend series come from the
// detection pipeline in a full deployment; here that pipeline is mocked.
var (
	demoRecentActivity = map[string]ActivityWindow{
		"last_24h": {NewCampaigns: 3, NewPosts: 1247, NewAccounts: 89},
		"last_7d":  {NewCampaigns: 15, NewPosts: 8934, NewAccounts: 421},
	}

	demoTrendData = []TrendPoint{
		{Date: "2026-01-29", Campaigns: 2, Posts: 450},
		{Date: "2026-01-30", Campaigns: 3, Posts: 678},
		{Date: "2026-01-31", Campaigns: 1, Posts: 234},
		{Date: "2026-02-01", Campaigns: 4, Posts: 892},
		{Date: "2026-02-02", Campaigns: 2, Posts: 567},
		{Date: "2026-02-03", Campaigns: 5, Posts: 1123},
		{Date: "2026-02-04", Campaigns: 3, Posts: 1247},
	}
)

// Overview computes the dashboard statistics and distributions.
func (s *AnalyticsService) Overview() (*Overview, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	campaigns := ds.Campaigns()
	accounts := ds.Accounts()

	stats := OverviewStats{
		TotalCampaigns:         len(campaigns),
		TotalAccountsMonitored: len(accounts),
		TotalPostsAnalyzed:     ds.Counts()[storage.CollectionPosts],
	}
	for _, c := range campaigns {
		if c.Status == core.CampaignStatusActive {
			stats.ActiveThreats++
		}
		if c.ThreatLevel == core.ThreatLevelHigh || c.ThreatLevel == core.ThreatLevelCritical {
			stats.HighRiskCampaigns++
		}
	}
	for _, a := range accounts {
		if a.AccountType == core.AccountTypeBot {
			stats.BotAccountsDetected++
		}
	}

	return &Overview{
		Stats:              stats,
		ThreatDistribution: query.ThreatLevels(campaigns),
		PlatformBreakdown:  query.PlatformCampaigns(campaigns, ds.PostsByCampaign),
		RecentActivity:     demoRecentActivity,
		TrendData:          demoTrendData,
	}, nil
}

// ThreatTrendPoint is one day of the per-level threat trend chart.
type ThreatTrendPoint struct {
	Date     string `json:"date"`
	Critical int    `json:"critical"`
	High     int    `json:"high"`
	Medium   int    `json:"medium"`
	Low      int    `json:"low"`
}

// ThreatIndicator is one entry of the top-indicator list.
type ThreatIndicator struct {
	Indicator string `json:"indicator"`
	Frequency int    `json:"frequency"`
}

// ThreatAnalytics is the payload for the threat analytics charts.
type ThreatAnalytics struct {
	ThreatTrends             []ThreatTrendPoint `json:"threat_trends"`
	CampaignTypeDistribution []query.TypeCount  `json:"campaign_type_distribution"`
	TopThreatIndicators      []ThreatIndicator  `json:"top_threat_indicators"`
}

var (
	demoThreatTrends7d = []ThreatTrendPoint{
		{Date: "2026-01-29", Critical: 0, High: 1, Medium: 3, Low: 2},
		{Date: "2026-01-30", Critical: 1, High: 2, Medium: 4, Low: 3},
		{Date: "2026-01-31", Critical: 0, High: 1, Medium: 2, Low: 1},
		{Date: "2026-02-01", Critical: 0, High: 2, Medium: 5, Low: 4},
		{Date: "2026-02-02", Critical: 1, High: 1, Medium: 3, Low: 2},
		{Date: "2026-02-03", Critical: 0, High: 3, Medium: 6, Low: 5},
		{Date: "2026-02-04", Critical: 2, High: 2, Medium: 4, Low: 3},
	}

	demoThreatTrendsShort = []ThreatTrendPoint{
		{Date: "2026-01-29", Critical: 0, High: 1, Medium: 3, Low: 2},
		{Date: "2026-01-30", Critical: 1, High: 2, Medium: 4, Low: 3},
	}

	demoThreatIndicators = []ThreatIndicator{
		{Indicator: "High content similarity", Frequency: 32},
		{Indicator: "Bot involvement", Frequency: 28},
		{Indicator: "Coordinated timing", Frequency: 24},
		{Indicator: "Suspicious accounts", Frequency: 19},
	}
)

// Threats computes the threat analytics view for a period (24h, 7d, 30d,
// all). The trend series is canned demo data; the campaign-type
// distribution is computed from the loaded campaigns.
func (s *AnalyticsService) Threats(period string) (*ThreatAnalytics, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	trends := demoThreatTrendsShort
	if period == "7d" {
		trends = demoThreatTrends7d
	}

	return &ThreatAnalytics{
		ThreatTrends:             trends,
		CampaignTypeDistribution: query.CampaignTypes(ds.Campaigns()),
		TopThreatIndicators:      demoThreatIndicators,
	}, nil
}
