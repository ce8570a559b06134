package query

import (
	"sort"

	"deeptrace/core"
)

// Each collection recognizes a fixed set of sort fields, split into two
// comparison classes: lexicographic for timestamp/string fields and numeric
// for count/score fields. An unrecognized field name is a no-op, leaving
// the collection in its pre-sort order. Sorting is stable throughout so
// equal keys keep their relative input order.

func sortByString[T any](items []T, key func(T) string, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return key(items[i]) > key(items[j])
		}
		return key(items[i]) < key(items[j])
	})
}

func sortByNumber[T any](items []T, key func(T) float64, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return key(items[i]) > key(items[j])
		}
		return key(items[i]) < key(items[j])
	})
}

// SortCampaigns orders campaigns in place by a recognized field.
func SortCampaigns(items []core.Campaign, field, order string) {
	desc := order == "desc"
	switch field {
	case "detected_at":
		sortByString(items, func(c core.Campaign) string { return c.DetectedAt }, desc)
	case "last_activity":
		sortByString(items, func(c core.Campaign) string { return c.LastActivity }, desc)
	case "created_at":
		sortByString(items, func(c core.Campaign) string { return c.CreatedAt }, desc)
	case "updated_at":
		sortByString(items, func(c core.Campaign) string { return c.UpdatedAt }, desc)
	case "total_posts":
		sortByNumber(items, func(c core.Campaign) float64 { return float64(c.TotalPosts) }, desc)
	case "total_accounts":
		sortByNumber(items, func(c core.Campaign) float64 { return float64(c.TotalAccounts) }, desc)
	case "confidence_score":
		sortByNumber(items, func(c core.Campaign) float64 { return c.ConfidenceScore }, desc)
	}
}

// SortPosts orders posts in place by a recognized field.
func SortPosts(items []core.Post, field, order string) {
	desc := order == "desc"
	switch field {
	case "posted_at":
		sortByString(items, func(p core.Post) string { return p.PostedAt }, desc)
	case "created_at":
		sortByString(items, func(p core.Post) string { return p.CreatedAt }, desc)
	case "engagement_count":
		sortByNumber(items, func(p core.Post) float64 { return float64(p.EngagementCount) }, desc)
	}
}

// SortAccounts orders accounts in place by a recognized field.
func SortAccounts(items []core.Account, field, order string) {
	desc := order == "desc"
	switch field {
	case "last_active":
		sortByString(items, func(a core.Account) string { return a.LastActive }, desc)
	case "bot_probability":
		sortByNumber(items, func(a core.Account) float64 { return a.BotProbability }, desc)
	case "risk_score":
		sortByNumber(items, func(a core.Account) float64 { return a.RiskScore }, desc)
	case "follower_count":
		sortByNumber(items, func(a core.Account) float64 { return float64(a.FollowerCount) }, desc)
	}
}

// SortReports orders reports in place by a recognized field.
func SortReports(items []core.Report, field, order string) {
	desc := order == "desc"
	switch field {
	case "generated_at":
		sortByString(items, func(r core.Report) string { return r.GeneratedAt }, desc)
	case "views_count":
		sortByNumber(items, func(r core.Report) float64 { return float64(r.ViewsCount) }, desc)
	}
}
