package query

import (
	"deeptrace/core"
	"deeptrace/metrics"
)

// UnknownMarker is the placeholder substituted for a foreign key that does
// not resolve. A stale or malformed cross-reference degrades to this marker
// instead of failing the listing that contains it.
const UnknownMarker = "Unknown"

// Lookup is the slice of dataset access the resolver needs. Defined here,
// on the consumer side; *storage.Dataset satisfies it.
type Lookup interface {
	CampaignByID(id string) (*core.Campaign, error)
	AccountByID(id string) (*core.Account, error)
	PostsByCampaign(campaignID string) []core.Post
	PostsByAccount(accountID string) []core.Post
}

// Resolver computes derived, cross-collection fields. It only ever reads
// through the Lookup and only ever writes enrichment copies, so the stored
// records stay untouched.
type Resolver struct {
	lookup Lookup
}

// NewResolver creates a resolver over a dataset snapshot.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// PostDetail is a post enriched with its campaign title and author
// username. CampaignTitle is null for organic posts with no campaign
// reference and "Unknown" for a dangling one.
type PostDetail struct {
	core.Post
	CampaignTitle   *string `json:"campaign_title"`
	AccountUsername string  `json:"account_username"`
}

// EnrichPost resolves a post's campaign and account references.
func (r *Resolver) EnrichPost(p core.Post) PostDetail {
	detail := PostDetail{Post: p}

	if p.CampaignID != "" {
		title := UnknownMarker
		if campaign, err := r.lookup.CampaignByID(p.CampaignID); err == nil {
			title = campaign.Title
		} else {
			metrics.DanglingReferences.WithLabelValues("campaigns").Inc()
		}
		detail.CampaignTitle = &title
	}

	// A post's account reference is required, so a miss here is a data
	// integrity problem. It still degrades to the marker: one stale
	// reference must not break a page render.
	detail.AccountUsername = UnknownMarker
	if account, err := r.lookup.AccountByID(p.AccountID); err == nil {
		detail.AccountUsername = account.Username
	} else {
		metrics.DanglingReferences.WithLabelValues("accounts").Inc()
	}

	return detail
}

// EnrichPosts resolves references for a whole post listing, preserving
// order.
func (r *Resolver) EnrichPosts(posts []core.Post) []PostDetail {
	out := make([]PostDetail, 0, len(posts))
	for _, p := range posts {
		out = append(out, r.EnrichPost(p))
	}
	return out
}

// AccountDetail is an account enriched with the number of distinct
// campaigns it has posted in.
type AccountDetail struct {
	core.Account
	CampaignsInvolved int `json:"campaigns_involved"`
}

// CampaignsInvolved counts the distinct campaign identifiers among an
// account's posts. Posts with no campaign are excluded; several posts in
// the same campaign count once.
func (r *Resolver) CampaignsInvolved(accountID string) int {
	seen := make(map[string]struct{})
	for _, p := range r.lookup.PostsByAccount(accountID) {
		if p.CampaignID != "" {
			seen[p.CampaignID] = struct{}{}
		}
	}
	return len(seen)
}

// EnrichAccounts adds the campaigns_involved count to each account,
// preserving order.
func (r *Resolver) EnrichAccounts(accounts []core.Account) []AccountDetail {
	out := make([]AccountDetail, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountDetail{
			Account:           a,
			CampaignsInvolved: r.CampaignsInvolved(a.ID),
		})
	}
	return out
}

// CampaignAccount is an account viewed in the context of one campaign, with
// its activity span inside that campaign.
type CampaignAccount struct {
	core.Account
	PostCountInCampaign int    `json:"post_count_in_campaign"`
	FirstPostAt         string `json:"first_post_at"`
	LastPostAt          string `json:"last_post_at"`
}

// AccountsByCampaign derives the accounts posting in a campaign. For each
// distinct posting account it computes the post count and the min/max
// posted_at within the campaign (ISO-8601 strings compare lexicographically).
// Accounts referenced by posts but absent from the account collection are
// skipped: a dangling author reference should not break the page.
func (r *Resolver) AccountsByCampaign(campaignID string) []CampaignAccount {
	posts := r.lookup.PostsByCampaign(campaignID)

	byAccount := make(map[string][]core.Post)
	var order []string
	for _, p := range posts {
		if _, seen := byAccount[p.AccountID]; !seen {
			order = append(order, p.AccountID)
		}
		byAccount[p.AccountID] = append(byAccount[p.AccountID], p)
	}

	out := make([]CampaignAccount, 0, len(order))
	for _, accountID := range order {
		account, err := r.lookup.AccountByID(accountID)
		if err != nil {
			metrics.DanglingReferences.WithLabelValues("accounts").Inc()
			continue
		}

		accountPosts := byAccount[accountID]
		first, last := accountPosts[0].PostedAt, accountPosts[0].PostedAt
		for _, p := range accountPosts[1:] {
			if p.PostedAt < first {
				first = p.PostedAt
			}
			if p.PostedAt > last {
				last = p.PostedAt
			}
		}

		out = append(out, CampaignAccount{
			Account:             *account,
			PostCountInCampaign: len(accountPosts),
			FirstPostAt:         first,
			LastPostAt:          last,
		})
	}
	return out
}

// ReportDetail is a report enriched with its campaign title, following the
// same absent/dangling policy as posts.
type ReportDetail struct {
	core.Report
	CampaignTitle *string `json:"campaign_title"`
}

// EnrichReport resolves a report's campaign reference.
func (r *Resolver) EnrichReport(report core.Report) ReportDetail {
	detail := ReportDetail{Report: report}
	if report.CampaignID != "" {
		title := UnknownMarker
		if campaign, err := r.lookup.CampaignByID(report.CampaignID); err == nil {
			title = campaign.Title
		} else {
			metrics.DanglingReferences.WithLabelValues("campaigns").Inc()
		}
		detail.CampaignTitle = &title
	}
	return detail
}

// EnrichReports resolves references for a whole report listing, preserving
// order.
func (r *Resolver) EnrichReports(reports []core.Report) []ReportDetail {
	out := make([]ReportDetail, 0, len(reports))
	for _, report := range reports {
		out = append(out, r.EnrichReport(report))
	}
	return out
}
