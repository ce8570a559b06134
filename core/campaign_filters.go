package core

// FilterAll is the sentinel query value meaning "no constraint". The
// frontend sends it explicitly for every dropdown default.
const FilterAll = "all"

// CampaignFilters defines the filtering, sorting and pagination options
// accepted by the campaign listing.
type CampaignFilters struct {
	Status       string `json:"status"`        // active, monitoring, resolved, archived
	ThreatLevel  string `json:"threat_level"`  // low, medium, high, critical
	CampaignType string `json:"campaign_type"` // free-form tag

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // detected_at, last_activity, created_at, updated_at, total_posts, total_accounts, confidence_score
	SortOrder string `json:"sort_order"` // asc, desc
}

// NewCampaignFilters creates CampaignFilters with default values.
func NewCampaignFilters() *CampaignFilters {
	return &CampaignFilters{
		Status:       FilterAll,
		ThreatLevel:  FilterAll,
		CampaignType: FilterAll,
		Page:         1,
		Limit:        20,
		SortBy:       "detected_at",
		SortOrder:    "desc",
	}
}
