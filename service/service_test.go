package service

import (
	"errors"
	"testing"

	"deeptrace/core"
	"deeptrace/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memProvider serves collections from memory for service tests.
type memProvider struct {
	docs map[string][]byte
}

func (p *memProvider) Collection(name string) ([]byte, error) {
	doc, ok := p.docs[name]
	if !ok {
		return nil, errors.New("collection not found")
	}
	return doc, nil
}

// testStore loads a small, fully cross-referenced dataset: two campaigns,
// three accounts (one dangling reference target missing on purpose), five
// posts and two reports.
func testStore(t *testing.T) *storage.Store {
	t.Helper()
	p := &memProvider{docs: map[string][]byte{
		storage.CollectionCampaigns: []byte(`[
			{"id":"c1","title":"Election Op","threat_level":"high","status":"active","campaign_type":"political",
			 "detected_at":"2026-02-01T00:00:00Z","total_posts":3,"confidence_score":88.0},
			{"id":"c2","title":"Crypto Scam Wave","threat_level":"low","status":"monitoring","campaign_type":"commercial",
			 "detected_at":"2026-02-03T00:00:00Z","total_posts":1,"confidence_score":55.5}
		]`),
		storage.CollectionPosts: []byte(`[
			{"id":"p1","campaign_id":"c1","account_id":"a1","platform":"twitter","posted_at":"2026-02-01T08:00:00Z",
			 "content":"vote now","hashtags":["vote","breaking"],"engagement_count":10,"is_flagged":true},
			{"id":"p2","campaign_id":"c1","account_id":"a1","platform":"twitter","posted_at":"2026-02-02T08:00:00Z",
			 "content":"VOTE again","hashtags":["vote"],"engagement_count":500},
			{"id":"p3","campaign_id":"c1","account_id":"a2","platform":"reddit","posted_at":"2026-02-03T08:00:00Z",
			 "content":"discussion thread","engagement_count":40},
			{"id":"p4","campaign_id":"c2","account_id":"a2","platform":"telegram","posted_at":"2026-02-04T08:00:00Z",
			 "content":"buy coins","engagement_count":5},
			{"id":"p5","account_id":"ghost","platform":"twitter","posted_at":"2026-02-05T08:00:00Z",
			 "content":"organic chatter","engagement_count":1}
		]`),
		storage.CollectionAccounts: []byte(`[
			{"id":"a1","username":"botfarm_01","platform":"twitter","bot_probability":92.5,"account_type":"bot"},
			{"id":"a2","username":"citizen","platform":"reddit","bot_probability":3.1,"account_type":"human"}
		]`),
		storage.CollectionThreatScores: []byte(`[
			{"id":"t1","campaign_id":"c1","overall_threat_score":87.4}
		]`),
		storage.CollectionReports: []byte(`[
			{"id":"r1","title":"Weekly Summary","report_type":"threat_summary","status":"published",
			 "campaign_id":"c1","generated_at":"2026-02-01T00:00:00Z","views_count":12},
			{"id":"r2","title":"Draft Notes","report_type":"custom","status":"draft",
			 "generated_at":"2026-02-02T00:00:00Z"}
		]`),
	}}
	s := storage.NewStore(p, zap.NewNop().Sugar())
	s.Load()
	return s
}

func TestCampaignServiceList(t *testing.T) {
	svc := NewCampaignService(testStore(t), zap.NewNop().Sugar())

	t.Run("default sort is detected_at desc", func(t *testing.T) {
		list, err := svc.List(core.NewCampaignFilters())
		require.NoError(t, err)
		require.Len(t, list.Campaigns, 2)
		assert.Equal(t, "c2", list.Campaigns[0].ID)
		assert.Equal(t, 1, list.Pagination.TotalPages)
		assert.Equal(t, 2, list.Pagination.TotalItems)
	})

	t.Run("filter by status", func(t *testing.T) {
		f := core.NewCampaignFilters()
		f.Status = "active"
		list, err := svc.List(f)
		require.NoError(t, err)
		require.Len(t, list.Campaigns, 1)
		assert.Equal(t, "c1", list.Campaigns[0].ID)
	})
}

func TestCampaignServiceGet(t *testing.T) {
	svc := NewCampaignService(testStore(t), zap.NewNop().Sugar())

	t.Run("detail with threat analysis", func(t *testing.T) {
		detail, err := svc.Get("c1")
		require.NoError(t, err)
		assert.Equal(t, "Election Op", detail.Campaign.Title)
		require.NotNil(t, detail.ThreatAnalysis)
		assert.Equal(t, 87.4, detail.ThreatAnalysis.OverallThreatScore)

		require.NotEmpty(t, detail.TopHashtags)
		assert.Equal(t, "vote", detail.TopHashtags[0].Tag)
		assert.Equal(t, 2, detail.TopHashtags[0].Count)

		require.Len(t, detail.PlatformBreakdown, 2)
		assert.Equal(t, "twitter", detail.PlatformBreakdown[0].Platform)
		assert.Equal(t, 66.7, detail.PlatformBreakdown[0].Percentage)
		assert.NotEmpty(t, detail.Timeline)
	})

	t.Run("missing threat analysis stays null", func(t *testing.T) {
		detail, err := svc.Get("c2")
		require.NoError(t, err)
		assert.Nil(t, detail.ThreatAnalysis)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get("nope")
		assert.True(t, errors.Is(err, storage.ErrCampaignNotFound))
	})
}

func TestCampaignServiceGetPosts(t *testing.T) {
	svc := NewCampaignService(testStore(t), zap.NewNop().Sugar())

	t.Run("most recent first with usernames", func(t *testing.T) {
		posts, err := svc.GetPosts("c1", 1, 20, "posted_at")
		require.NoError(t, err)
		assert.Equal(t, "Election Op", posts.CampaignTitle)
		require.Len(t, posts.Posts, 3)
		assert.Equal(t, "p3", posts.Posts[0].ID)
		assert.Equal(t, "citizen", posts.Posts[0].AccountUsername)
	})

	t.Run("sort by engagement", func(t *testing.T) {
		posts, err := svc.GetPosts("c1", 1, 20, "engagement_count")
		require.NoError(t, err)
		assert.Equal(t, "p2", posts.Posts[0].ID)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		_, err := svc.GetPosts("nope", 1, 20, "posted_at")
		assert.True(t, errors.Is(err, storage.ErrCampaignNotFound))
	})
}

func TestCampaignServiceGetAccounts(t *testing.T) {
	svc := NewCampaignService(testStore(t), zap.NewNop().Sugar())

	accounts, err := svc.GetAccounts("c1")
	require.NoError(t, err)

	assert.Equal(t, 2, accounts.TotalAccounts)
	assert.Equal(t, 50.0, accounts.BotPercentage)

	require.Len(t, accounts.Accounts, 2)
	assert.Equal(t, "a1", accounts.Accounts[0].ID)
	assert.Equal(t, 2, accounts.Accounts[0].PostCountInCampaign)
	assert.Equal(t, "2026-02-01T08:00:00Z", accounts.Accounts[0].FirstPostAt)
	assert.Equal(t, "2026-02-02T08:00:00Z", accounts.Accounts[0].LastPostAt)

	require.Len(t, accounts.NetworkGraph.Nodes, 2)
	assert.Equal(t, "botfarm_01", accounts.NetworkGraph.Nodes[0].Label)
	require.Len(t, accounts.NetworkGraph.Edges, 1)
	assert.Equal(t, 5, accounts.NetworkGraph.Edges[0].Weight)
}

func TestPostServiceList(t *testing.T) {
	svc := NewPostService(testStore(t), zap.NewNop().Sugar())

	t.Run("all posts most recent first", func(t *testing.T) {
		list, err := svc.List(core.NewPostFilters())
		require.NoError(t, err)
		require.Len(t, list.Posts, 5)
		assert.Equal(t, "p5", list.Posts[0].ID)
		// Dangling author degrades to the marker instead of failing.
		assert.Equal(t, "Unknown", list.Posts[0].AccountUsername)
		// Organic post carries no campaign title.
		assert.Nil(t, list.Posts[0].CampaignTitle)
	})

	t.Run("search narrows case-insensitively", func(t *testing.T) {
		f := core.NewPostFilters()
		f.Search = "vote"
		list, err := svc.List(f)
		require.NoError(t, err)
		assert.Len(t, list.Posts, 2)
	})

	t.Run("campaign titles resolved", func(t *testing.T) {
		f := core.NewPostFilters()
		f.Platform = "telegram"
		list, err := svc.List(f)
		require.NoError(t, err)
		require.Len(t, list.Posts, 1)
		require.NotNil(t, list.Posts[0].CampaignTitle)
		assert.Equal(t, "Crypto Scam Wave", *list.Posts[0].CampaignTitle)
	})
}

func TestAccountServiceList(t *testing.T) {
	svc := NewAccountService(testStore(t), zap.NewNop().Sugar())

	list, err := svc.List(core.NewAccountFilters())
	require.NoError(t, err)
	require.Len(t, list.Accounts, 2)

	// Highest bot probability first.
	assert.Equal(t, "a1", list.Accounts[0].ID)
	assert.Equal(t, 1, list.Accounts[0].CampaignsInvolved)
	assert.Equal(t, "a2", list.Accounts[1].ID)
	assert.Equal(t, 2, list.Accounts[1].CampaignsInvolved)
}

func TestReportService(t *testing.T) {
	svc := NewReportService(testStore(t), zap.NewNop().Sugar())

	t.Run("default listing keeps published only", func(t *testing.T) {
		list, err := svc.List(core.NewReportFilters())
		require.NoError(t, err)
		require.Len(t, list.Reports, 1)
		assert.Equal(t, "r1", list.Reports[0].ID)
		require.NotNil(t, list.Reports[0].CampaignTitle)
		assert.Equal(t, "Election Op", *list.Reports[0].CampaignTitle)
	})

	t.Run("get resolves the campaign title", func(t *testing.T) {
		report, err := svc.Get("r1")
		require.NoError(t, err)
		require.NotNil(t, report.CampaignTitle)
		assert.Equal(t, "Election Op", *report.CampaignTitle)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get("nope")
		assert.True(t, errors.Is(err, storage.ErrReportNotFound))
	})
}

func TestAnalyticsOverview(t *testing.T) {
	svc := NewAnalyticsService(testStore(t), zap.NewNop().Sugar())

	overview, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Stats.TotalCampaigns)
	assert.Equal(t, 1, overview.Stats.ActiveThreats)
	assert.Equal(t, 1, overview.Stats.HighRiskCampaigns)
	assert.Equal(t, 2, overview.Stats.TotalAccountsMonitored)
	assert.Equal(t, 5, overview.Stats.TotalPostsAnalyzed)
	assert.Equal(t, 1, overview.Stats.BotAccountsDetected)

	assert.Equal(t, 1, overview.ThreatDistribution.High)
	assert.Equal(t, 1, overview.ThreatDistribution.Low)

	// c1 spans twitter+reddit, c2 is telegram-only.
	require.Len(t, overview.PlatformBreakdown, 3)
	assert.NotEmpty(t, overview.RecentActivity)
	assert.NotEmpty(t, overview.TrendData)
}

func TestAnalyticsThreats(t *testing.T) {
	svc := NewAnalyticsService(testStore(t), zap.NewNop().Sugar())

	t.Run("7d period returns the full series", func(t *testing.T) {
		analytics, err := svc.Threats("7d")
		require.NoError(t, err)
		assert.Len(t, analytics.ThreatTrends, 7)
		require.Len(t, analytics.CampaignTypeDistribution, 2)
		assert.Equal(t, 50.0, analytics.CampaignTypeDistribution[0].Percentage)
		assert.NotEmpty(t, analytics.TopThreatIndicators)
	})

	t.Run("other periods return the short series", func(t *testing.T) {
		analytics, err := svc.Threats("24h")
		require.NoError(t, err)
		assert.Len(t, analytics.ThreatTrends, 2)
	})
}

func TestServicesBeforeLoad(t *testing.T) {
	s := storage.NewStore(&memProvider{docs: map[string][]byte{}}, zap.NewNop().Sugar())
	svc := NewCampaignService(s, zap.NewNop().Sugar())
	_, err := svc.List(core.NewCampaignFilters())
	assert.True(t, errors.Is(err, storage.ErrNotLoaded))
}
