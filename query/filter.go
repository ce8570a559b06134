package query

import (
	"strings"

	"deeptrace/core"
)

// matchExact reports whether an exact-match criterion accepts a value.
// An empty criterion and the "all" sentinel both mean "no constraint".
func matchExact(criterion, value string) bool {
	return criterion == "" || criterion == core.FilterAll || criterion == value
}

// FilterCampaigns applies the campaign criteria conjunctively. The result
// is a subsequence of the input: relative order is preserved and no record
// is copied or modified.
func FilterCampaigns(items []core.Campaign, f *core.CampaignFilters) []core.Campaign {
	out := make([]core.Campaign, 0, len(items))
	for _, c := range items {
		if !matchExact(f.Status, string(c.Status)) {
			continue
		}
		if !matchExact(f.ThreatLevel, string(c.ThreatLevel)) {
			continue
		}
		if !matchExact(f.CampaignType, c.CampaignType) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterPosts applies the post criteria conjunctively. IsFlagged is
// three-valued: nil imposes no constraint. Search is a case-insensitive
// substring match over the post content.
func FilterPosts(items []core.Post, f *core.PostFilters) []core.Post {
	search := strings.ToLower(f.Search)
	out := make([]core.Post, 0, len(items))
	for _, p := range items {
		if !matchExact(f.Platform, string(p.Platform)) {
			continue
		}
		if f.IsFlagged != nil && p.IsFlagged != *f.IsFlagged {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Content), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAccounts applies the account criteria conjunctively. The bot
// probability floor only activates for thresholds strictly greater than
// zero; at zero it would match every account.
func FilterAccounts(items []core.Account, f *core.AccountFilters) []core.Account {
	out := make([]core.Account, 0, len(items))
	for _, a := range items {
		if !matchExact(f.AccountType, string(a.AccountType)) {
			continue
		}
		if f.MinBotProbability > 0 && a.BotProbability < f.MinBotProbability {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterReports applies the report criteria conjunctively.
func FilterReports(items []core.Report, f *core.ReportFilters) []core.Report {
	out := make([]core.Report, 0, len(items))
	for _, r := range items {
		if !matchExact(f.Status, string(r.Status)) {
			continue
		}
		if !matchExact(f.Severity, string(r.Severity)) {
			continue
		}
		if !matchExact(f.ReportType, string(r.ReportType)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
