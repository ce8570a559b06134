package service

import (
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// CampaignService serves campaign listings, details and the per-campaign
// post and account views.
type CampaignService struct {
	store  Datastore
	logger *zap.SugaredLogger
}

// NewCampaignService creates a new CampaignService instance.
func NewCampaignService(store Datastore, logger *zap.SugaredLogger) *CampaignService {
	if store == nil {
		panic("store is required")
	}
	return &CampaignService{store: store, logger: logger}
}

// CampaignList is a filtered, sorted, paginated campaign listing.
type CampaignList struct {
	Campaigns  []core.Campaign  `json:"campaigns"`
	Pagination query.Pagination `json:"pagination"`
}

// List returns campaigns matching the filters.
func (s *CampaignService) List(f *core.CampaignFilters) (*CampaignList, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	campaigns := query.FilterCampaigns(ds.Campaigns(), f)
	query.SortCampaigns(campaigns, f.SortBy, f.SortOrder)
	page, pagination := query.Paginate(campaigns, f.Page, f.Limit)

	return &CampaignList{Campaigns: page, Pagination: pagination}, nil
}

// TimelinePoint is one bucket of the campaign activity timeline.
type TimelinePoint struct {
	Date      string `json:"date"`
	PostCount int    `json:"post_count"`
}

// demoTimeline is the canned hourly activity series shown on the campaign
// detail page. Real timeline buckets belong to the detection pipeline,
// which is mocked in this deployment.
var demoTimeline = []TimelinePoint{
	{Date: "2026-02-04T10:00:00Z", PostCount: 15},
	{Date: "2026-02-04T11:00:00Z", PostCount: 89},
	{Date: "2026-02-04T12:00:00Z", PostCount: 67},
	{Date: "2026-02-04T13:00:00Z", PostCount: 43},
	{Date: "2026-02-04T14:00:00Z", PostCount: 33},
}

// CampaignDetail is a campaign with its threat analysis and the derived
// hashtag and platform rollups.
type CampaignDetail struct {
	Campaign          core.Campaign             `json:"campaign"`
	ThreatAnalysis    *core.ThreatScore         `json:"threat_analysis"`
	TopHashtags       []query.HashtagCount      `json:"top_hashtags"`
	PlatformBreakdown []query.PlatformPostCount `json:"platform_breakdown"`
	Timeline          []TimelinePoint           `json:"timeline"`
}

// Get returns the enriched detail view for one campaign, or
// storage.ErrCampaignNotFound.
func (s *CampaignService) Get(id string) (*CampaignDetail, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	campaign, err := ds.CampaignByID(id)
	if err != nil {
		return nil, err
	}

	// Missing threat analysis is not an error; the field stays null.
	score, err := ds.ThreatScoreByCampaign(id)
	if err != nil {
		score = nil
	}

	posts := ds.PostsByCampaign(id)
	return &CampaignDetail{
		Campaign:          *campaign,
		ThreatAnalysis:    score,
		TopHashtags:       query.TopHashtags(posts, 10),
		PlatformBreakdown: query.PlatformPosts(posts),
		Timeline:          demoTimeline,
	}, nil
}

// CampaignPosts is the paginated post listing of one campaign.
type CampaignPosts struct {
	CampaignID    string             `json:"campaign_id"`
	CampaignTitle string             `json:"campaign_title"`
	Posts         []query.PostDetail `json:"posts"`
	Pagination    query.Pagination   `json:"pagination"`
}

// GetPosts returns the posts of one campaign, most recent (or most engaged)
// first, enriched with author usernames.
func (s *CampaignService) GetPosts(id string, page, limit int, sortBy string) (*CampaignPosts, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	campaign, err := ds.CampaignByID(id)
	if err != nil {
		return nil, err
	}

	posts := ds.PostsByCampaign(id)
	query.SortPosts(posts, sortBy, "desc")

	resolver := query.NewResolver(ds)
	enriched := resolver.EnrichPosts(posts)
	pageItems, pagination := query.Paginate(enriched, page, limit)

	return &CampaignPosts{
		CampaignID:    id,
		CampaignTitle: campaign.Title,
		Posts:         pageItems,
		Pagination:    pagination,
	}, nil
}

// GraphNode is one account in the campaign network graph.
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Size  int    `json:"size"`
}

// GraphEdge is one connection in the campaign network graph.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// NetworkGraph is the simplified account graph rendered on the campaign
// accounts page.
type NetworkGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// CampaignAccounts is the account view of one campaign.
type CampaignAccounts struct {
	CampaignID    string                  `json:"campaign_id"`
	CampaignTitle string                  `json:"campaign_title"`
	TotalAccounts int                     `json:"total_accounts"`
	BotPercentage float64                 `json:"bot_percentage"`
	Accounts      []query.CampaignAccount `json:"accounts"`
	NetworkGraph  NetworkGraph            `json:"network_graph"`
}

// graphNodeLimit caps the rendered graph; large campaigns would otherwise
// overwhelm the frontend visualization.
const graphNodeLimit = 20

// GetAccounts returns every account involved in a campaign with its
// in-campaign activity span, plus the bot share and the network graph stub.
func (s *CampaignService) GetAccounts(id string) (*CampaignAccounts, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	campaign, err := ds.CampaignByID(id)
	if err != nil {
		return nil, err
	}

	resolver := query.NewResolver(ds)
	accounts := resolver.AccountsByCampaign(id)

	botCount := 0
	for _, a := range accounts {
		if a.AccountType == core.AccountTypeBot {
			botCount++
		}
	}
	botPercentage := 0.0
	if len(accounts) > 0 {
		botPercentage = query.Percentage(botCount, len(accounts))
	}

	nodes := make([]GraphNode, 0, graphNodeLimit)
	for _, a := range accounts {
		if len(nodes) == graphNodeLimit {
			break
		}
		size := a.PostCountInCampaign
		if size < 1 {
			size = 1
		}
		nodes = append(nodes, GraphNode{
			ID:    a.ID,
			Label: a.Username,
			Type:  string(a.AccountType),
			Size:  size,
		})
	}
	edges := make([]GraphEdge, 0)
	for i := 0; i < len(nodes)-1 && i < 10; i++ {
		edges = append(edges, GraphEdge{Source: nodes[i].ID, Target: nodes[i+1].ID, Weight: 5})
	}

	return &CampaignAccounts{
		CampaignID:    id,
		CampaignTitle: campaign.Title,
		TotalAccounts: len(accounts),
		BotPercentage: botPercentage,
		Accounts:      accounts,
		NetworkGraph:  NetworkGraph{Nodes: nodes, Edges: edges},
	}, nil
}
