package query

import (
	"math"
	"sort"

	"deeptrace/core"
)

// counter counts string keys while remembering first-encounter order, so
// distributions keep a deterministic tie-break instead of map iteration
// order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percentage returns part/total as a percentage rounded to one decimal,
// and 0 when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// ThreatDistribution counts campaigns per threat level.
type ThreatDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// ThreatLevels computes the campaign threat-level distribution.
func ThreatLevels(campaigns []core.Campaign) ThreatDistribution {
	var d ThreatDistribution
	for _, c := range campaigns {
		switch c.ThreatLevel {
		case core.ThreatLevelCritical:
			d.Critical++
		case core.ThreatLevelHigh:
			d.High++
		case core.ThreatLevelMedium:
			d.Medium++
		case core.ThreatLevelLow:
			d.Low++
		}
	}
	return d
}

// TypeCount is one bucket of the campaign-type distribution.
type TypeCount struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CampaignTypes groups campaigns by type with each group's share of the
// total, sorted by descending count. Ties keep first-encountered order.
func CampaignTypes(campaigns []core.Campaign) []TypeCount {
	c := newCounter()
	for _, campaign := range campaigns {
		t := campaign.CampaignType
		if t == "" {
			t = "other"
		}
		c.add(t)
	}

	total := len(campaigns)
	out := make([]TypeCount, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, TypeCount{
			Type:       t,
			Count:      c.counts[t],
			Percentage: Percentage(c.counts[t], total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// PlatformCampaignCount is one bucket of the analytics platform breakdown.
type PlatformCampaignCount struct {
	Platform      string  `json:"platform"`
	CampaignCount int     `json:"campaign_count"`
	Percentage    float64 `json:"percentage"`
}

// PlatformCampaigns computes the platform breakdown over campaigns: a
// campaign counts toward every platform at least one of its posts uses, so
// one campaign can contribute to several buckets. Percentages are of the
// total campaign count and all zero when there are no campaigns. Buckets
// are sorted by descending count.
func PlatformCampaigns(campaigns []core.Campaign, postsFor func(campaignID string) []core.Post) []PlatformCampaignCount {
	sets := make(map[string]map[string]struct{})
	var order []string
	for _, campaign := range campaigns {
		for _, post := range postsFor(campaign.ID) {
			platform := string(post.Platform)
			if platform == "" {
				platform = string(core.PlatformOther)
			}
			if _, seen := sets[platform]; !seen {
				sets[platform] = make(map[string]struct{})
				order = append(order, platform)
			}
			sets[platform][campaign.ID] = struct{}{}
		}
	}

	total := len(campaigns)
	out := make([]PlatformCampaignCount, 0, len(order))
	for _, platform := range order {
		count := len(sets[platform])
		out = append(out, PlatformCampaignCount{
			Platform:      platform,
			CampaignCount: count,
			Percentage:    Percentage(count, total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CampaignCount > out[j].CampaignCount })
	return out
}

// PlatformPostCount is one bucket of a campaign's per-platform breakdown.
type PlatformPostCount struct {
	Platform   string  `json:"platform"`
	PostCount  int     `json:"post_count"`
	Percentage float64 `json:"percentage"`
}

// PlatformPosts breaks a campaign's posts down per platform with each
// platform's share of the campaign total. A campaign with zero posts yields
// an empty breakdown rather than dividing by zero. Buckets keep
// first-encountered order.
func PlatformPosts(posts []core.Post) []PlatformPostCount {
	c := newCounter()
	for _, p := range posts {
		platform := string(p.Platform)
		if platform == "" {
			platform = string(core.PlatformOther)
		}
		c.add(platform)
	}

	total := len(posts)
	out := make([]PlatformPostCount, 0, len(c.order))
	for _, platform := range c.order {
		out = append(out, PlatformPostCount{
			Platform:   platform,
			PostCount:  c.counts[platform],
			Percentage: Percentage(c.counts[platform], total),
		})
	}
	return out
}

// HashtagCount is one entry of a campaign's top-hashtag list.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopHashtags returns the limit most frequent hashtags across posts,
// descending by count with ties broken by first-encountered order.
func TopHashtags(posts []core.Post, limit int) []HashtagCount {
	c := newCounter()
	for _, p := range posts {
		for _, tag := range p.Hashtags {
			c.add(tag)
		}
	}

	out := make([]HashtagCount, 0, len(c.order))
	for _, tag := range c.order {
		out = append(out, HashtagCount{Tag: tag, Count: c.counts[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
