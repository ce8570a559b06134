package query

import (
	"testing"

	"deeptrace/core"

	"github.com/stretchr/testify/assert"
)

func TestSortCampaigns(t *testing.T) {
	campaigns := func() []core.Campaign {
		return []core.Campaign{
			{ID: "c1", DetectedAt: "2026-02-03T00:00:00Z", TotalPosts: 50, ConfidenceScore: 91.2},
			{ID: "c2", DetectedAt: "2026-02-01T00:00:00Z", TotalPosts: 200, ConfidenceScore: 55.0},
			{ID: "c3", DetectedAt: "2026-02-02T00:00:00Z", TotalPosts: 120, ConfidenceScore: 77.7},
		}
	}

	tests := []struct {
		name    string
		field   string
		order   string
		wantIDs []string
	}{
		{"detected_at desc", "detected_at", "desc", []string{"c1", "c3", "c2"}},
		{"detected_at asc", "detected_at", "asc", []string{"c2", "c3", "c1"}},
		{"total_posts desc", "total_posts", "desc", []string{"c2", "c3", "c1"}},
		{"confidence_score asc", "confidence_score", "asc", []string{"c2", "c3", "c1"}},
		{"unknown field is a no-op", "reach_estimate", "desc", []string{"c1", "c2", "c3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := campaigns()
			SortCampaigns(items, tt.field, tt.order)
			assert.Equal(t, tt.wantIDs, campaignIDs(items))
		})
	}
}

func TestSortCampaignsStableOnTies(t *testing.T) {
	items := []core.Campaign{
		{ID: "c1", TotalPosts: 10},
		{ID: "c2", TotalPosts: 10},
		{ID: "c3", TotalPosts: 10},
	}
	SortCampaigns(items, "total_posts", "desc")
	assert.Equal(t, []string{"c1", "c2", "c3"}, campaignIDs(items))
}

func TestSortPosts(t *testing.T) {
	items := []core.Post{
		{ID: "p1", PostedAt: "2026-02-01T10:00:00Z", EngagementCount: 5},
		{ID: "p2", PostedAt: "2026-02-03T10:00:00Z", EngagementCount: 900},
		{ID: "p3", PostedAt: "2026-02-02T10:00:00Z", EngagementCount: 40},
	}

	SortPosts(items, "posted_at", "desc")
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, "p1", items[2].ID)

	SortPosts(items, "engagement_count", "asc")
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[2].ID)
}

func TestSortAccounts(t *testing.T) {
	items := []core.Account{
		{ID: "a1", BotProbability: 12.0, FollowerCount: 900},
		{ID: "a2", BotProbability: 88.5, FollowerCount: 10},
		{ID: "a3", BotProbability: 45.1, FollowerCount: 5000},
	}

	SortAccounts(items, "bot_probability", "desc")
	assert.Equal(t, "a2", items[0].ID)
	assert.Equal(t, "a1", items[2].ID)

	SortAccounts(items, "follower_count", "desc")
	assert.Equal(t, "a3", items[0].ID)
}

func TestSortReports(t *testing.T) {
	items := []core.Report{
		{ID: "r1", GeneratedAt: "2026-01-20T00:00:00Z", ViewsCount: 4},
		{ID: "r2", GeneratedAt: "2026-02-01T00:00:00Z", ViewsCount: 120},
	}

	SortReports(items, "generated_at", "desc")
	assert.Equal(t, "r2", items[0].ID)

	SortReports(items, "views_count", "asc")
	assert.Equal(t, "r1", items[0].ID)
}
