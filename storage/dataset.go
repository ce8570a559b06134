package storage

import (
	"encoding/json"
	"errors"
	"os"

	"deeptrace/core"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// Dataset is one immutable snapshot of the five record collections.
// Collections keep their load order; identifier indexes are built once at
// load time so lookups are O(1). A Dataset is never mutated after
// buildDataset returns, which is what makes lock-free concurrent reads safe.
type Dataset struct {
	campaigns    []core.Campaign
	posts        []core.Post
	accounts     []core.Account
	threatScores []core.ThreatScore
	reports      []core.Report

	campaignByID    map[string]int
	postByID        map[string]int
	accountByID     map[string]int
	reportByID      map[string]int
	scoreByCampaign map[string]int

	postsByCampaign map[string][]int
	postsByAccount  map[string][]int
}

// loadCollection fetches one named collection from the provider, validates
// it against its schema and decodes it. Any failure degrades to an empty
// collection with a warning: a missing or corrupt source must never abort
// startup.
func loadCollection[T any](p Provider, name string, logger *zap.SugaredLogger) []T {
	data, err := p.Collection(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnw("Collection source not found, starting with empty collection",
				"collection", name)
		} else {
			logger.Warnw("Failed to read collection source, starting with empty collection",
				"collection", name,
				"error", err)
		}
		return nil
	}

	if schema, ok := collectionSchemas[name]; ok {
		result, err := gojsonschema.Validate(
			gojsonschema.NewStringLoader(schema),
			gojsonschema.NewBytesLoader(data),
		)
		if err != nil {
			logger.Warnw("Failed to decode collection source, starting with empty collection",
				"collection", name,
				"error", err)
			return nil
		}
		if !result.Valid() {
			logger.Warnw("Collection source failed schema validation, starting with empty collection",
				"collection", name,
				"errors", result.Errors())
			return nil
		}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warnw("Failed to decode collection source, starting with empty collection",
			"collection", name,
			"error", err)
		return nil
	}
	return records
}

// buildDataset loads all five collections and builds the indexes.
func buildDataset(p Provider, logger *zap.SugaredLogger) *Dataset {
	ds := &Dataset{
		campaigns:    loadCollection[core.Campaign](p, CollectionCampaigns, logger),
		posts:        loadCollection[core.Post](p, CollectionPosts, logger),
		accounts:     loadCollection[core.Account](p, CollectionAccounts, logger),
		threatScores: loadCollection[core.ThreatScore](p, CollectionThreatScores, logger),
		reports:      loadCollection[core.Report](p, CollectionReports, logger),
	}
	ds.buildIndexes()
	return ds
}

func (d *Dataset) buildIndexes() {
	d.campaignByID = make(map[string]int, len(d.campaigns))
	for i, c := range d.campaigns {
		d.campaignByID[c.ID] = i
	}

	d.postByID = make(map[string]int, len(d.posts))
	d.postsByCampaign = make(map[string][]int)
	d.postsByAccount = make(map[string][]int)
	for i, p := range d.posts {
		d.postByID[p.ID] = i
		if p.CampaignID != "" {
			d.postsByCampaign[p.CampaignID] = append(d.postsByCampaign[p.CampaignID], i)
		}
		if p.AccountID != "" {
			d.postsByAccount[p.AccountID] = append(d.postsByAccount[p.AccountID], i)
		}
	}

	d.accountByID = make(map[string]int, len(d.accounts))
	for i, a := range d.accounts {
		d.accountByID[a.ID] = i
	}

	d.reportByID = make(map[string]int, len(d.reports))
	for i, r := range d.reports {
		d.reportByID[r.ID] = i
	}

	// One score per campaign by convention; the first wins if the source
	// carries duplicates.
	d.scoreByCampaign = make(map[string]int, len(d.threatScores))
	for i, s := range d.threatScores {
		if _, exists := d.scoreByCampaign[s.CampaignID]; !exists {
			d.scoreByCampaign[s.CampaignID] = i
		}
	}
}

// Campaigns returns a copy of the campaign collection in load order.
func (d *Dataset) Campaigns() []core.Campaign {
	out := make([]core.Campaign, len(d.campaigns))
	copy(out, d.campaigns)
	return out
}

// CampaignByID returns a copy of the campaign with the given id.
func (d *Dataset) CampaignByID(id string) (*core.Campaign, error) {
	i, ok := d.campaignByID[id]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	c := d.campaigns[i]
	return &c, nil
}

// Posts returns a deep copy of the post collection in load order.
func (d *Dataset) Posts() []core.Post {
	out := make([]core.Post, len(d.posts))
	for i, p := range d.posts {
		out[i] = p.Clone()
	}
	return out
}

// PostByID returns a deep copy of the post with the given id.
func (d *Dataset) PostByID(id string) (*core.Post, error) {
	i, ok := d.postByID[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	p := d.posts[i].Clone()
	return &p, nil
}

// PostsByCampaign returns copies of all posts attributed to the campaign,
// in load order. An unknown campaign id yields an empty slice.
func (d *Dataset) PostsByCampaign(campaignID string) []core.Post {
	idxs := d.postsByCampaign[campaignID]
	out := make([]core.Post, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, d.posts[i].Clone())
	}
	return out
}

// PostsByAccount returns copies of all posts authored by the account, in
// load order.
func (d *Dataset) PostsByAccount(accountID string) []core.Post {
	idxs := d.postsByAccount[accountID]
	out := make([]core.Post, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, d.posts[i].Clone())
	}
	return out
}

// Accounts returns a deep copy of the account collection in load order.
func (d *Dataset) Accounts() []core.Account {
	out := make([]core.Account, len(d.accounts))
	for i, a := range d.accounts {
		out[i] = a.Clone()
	}
	return out
}

// AccountByID returns a deep copy of the account with the given id.
func (d *Dataset) AccountByID(id string) (*core.Account, error) {
	i, ok := d.accountByID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	a := d.accounts[i].Clone()
	return &a, nil
}

// ThreatScoreByCampaign returns a deep copy of the campaign's threat score.
func (d *Dataset) ThreatScoreByCampaign(campaignID string) (*core.ThreatScore, error) {
	i, ok := d.scoreByCampaign[campaignID]
	if !ok {
		return nil, ErrThreatScoreNotFound
	}
	s := d.threatScores[i].Clone()
	return &s, nil
}

// Reports returns a deep copy of the report collection in load order.
func (d *Dataset) Reports() []core.Report {
	out := make([]core.Report, len(d.reports))
	for i, r := range d.reports {
		out[i] = r.Clone()
	}
	return out
}

// ReportByID returns a deep copy of the report with the given id.
func (d *Dataset) ReportByID(id string) (*core.Report, error) {
	i, ok := d.reportByID[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	r := d.reports[i].Clone()
	return &r, nil
}

// Counts returns per-collection record counts, used for startup logging and
// the data CLI.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		CollectionCampaigns:    len(d.campaigns),
		CollectionPosts:        len(d.posts),
		CollectionAccounts:     len(d.accounts),
		CollectionThreatScores: len(d.threatScores),
		CollectionReports:      len(d.reports),
	}
}
