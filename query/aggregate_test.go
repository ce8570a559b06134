package query

import (
	"testing"

	"deeptrace/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 100.0, Percentage(5, 5))
	assert.Equal(t, 0.0, Percentage(0, 10))
	assert.Equal(t, 0.0, Percentage(3, 0))
}

func TestThreatLevels(t *testing.T) {
	campaigns := []core.Campaign{
		{ThreatLevel: core.ThreatLevelHigh},
		{ThreatLevel: core.ThreatLevelHigh},
		{ThreatLevel: core.ThreatLevelLow},
		{ThreatLevel: core.ThreatLevelCritical},
	}

	d := ThreatLevels(campaigns)
	assert.Equal(t, 1, d.Critical)
	assert.Equal(t, 2, d.High)
	assert.Equal(t, 0, d.Medium)
	assert.Equal(t, 1, d.Low)
}

func TestCampaignTypes(t *testing.T) {
	campaigns := []core.Campaign{
		{CampaignType: "political"},
		{CampaignType: "commercial"},
		{CampaignType: "political"},
		{CampaignType: ""},
	}

	got := CampaignTypes(campaigns)
	require.Len(t, got, 3)
	assert.Equal(t, TypeCount{Type: "political", Count: 2, Percentage: 50.0}, got[0])
	// Tied buckets keep first-encountered order.
	assert.Equal(t, "commercial", got[1].Type)
	assert.Equal(t, "other", got[2].Type)
	assert.Equal(t, 25.0, got[1].Percentage)
}

func TestPlatformCampaignsCountsDistinctCampaigns(t *testing.T) {
	campaigns := []core.Campaign{{ID: "c1"}, {ID: "c2"}}
	postsFor := func(id string) []core.Post {
		switch id {
		case "c1":
			// Several twitter posts in the same campaign count once.
			return []core.Post{
				{Platform: core.PlatformTwitter},
				{Platform: core.PlatformTwitter},
				{Platform: core.PlatformReddit},
			}
		case "c2":
			return []core.Post{{Platform: core.PlatformTwitter}}
		}
		return nil
	}

	got := PlatformCampaigns(campaigns, postsFor)
	require.Len(t, got, 2)
	assert.Equal(t, PlatformCampaignCount{Platform: "twitter", CampaignCount: 2, Percentage: 100.0}, got[0])
	assert.Equal(t, PlatformCampaignCount{Platform: "reddit", CampaignCount: 1, Percentage: 50.0}, got[1])
}

func TestPlatformCampaignsEmpty(t *testing.T) {
	got := PlatformCampaigns(nil, func(string) []core.Post { return nil })
	assert.Empty(t, got)
}

func TestPlatformPosts(t *testing.T) {
	posts := []core.Post{
		{Platform: core.PlatformTwitter},
		{Platform: core.PlatformTwitter},
		{Platform: core.PlatformReddit},
	}

	got := PlatformPosts(posts)
	require.Len(t, got, 2)
	assert.Equal(t, PlatformPostCount{Platform: "twitter", PostCount: 2, Percentage: 66.7}, got[0])
	assert.Equal(t, PlatformPostCount{Platform: "reddit", PostCount: 1, Percentage: 33.3}, got[1])
}

func TestPlatformPostsNoPosts(t *testing.T) {
	assert.Empty(t, PlatformPosts(nil))
}

func TestTopHashtags(t *testing.T) {
	posts := []core.Post{
		{Hashtags: []string{"breaking", "news", "vote"}},
		{Hashtags: []string{"news", "vote"}},
		{Hashtags: []string{"news"}},
	}

	got := TopHashtags(posts, 2)
	require.Len(t, got, 2)
	assert.Equal(t, HashtagCount{Tag: "news", Count: 3}, got[0])
	assert.Equal(t, HashtagCount{Tag: "vote", Count: 2}, got[1])
}

func TestTopHashtagsTieKeepsEncounterOrder(t *testing.T) {
	posts := []core.Post{
		{Hashtags: []string{"alpha", "beta"}},
	}
	got := TopHashtags(posts, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Tag)
	assert.Equal(t, "beta", got[1].Tag)
}
