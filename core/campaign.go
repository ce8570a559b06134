package core

// ThreatLevel classifies how dangerous a campaign is considered.
type ThreatLevel string

const (
	ThreatLevelLow      ThreatLevel = "low"
	ThreatLevelMedium   ThreatLevel = "medium"
	ThreatLevelHigh     ThreatLevel = "high"
	ThreatLevelCritical ThreatLevel = "critical"
)

// CampaignStatus tracks the lifecycle of a detected campaign.
type CampaignStatus string

const (
	CampaignStatusActive     CampaignStatus = "active"
	CampaignStatusMonitoring CampaignStatus = "monitoring"
	CampaignStatusResolved   CampaignStatus = "resolved"
	CampaignStatusArchived   CampaignStatus = "archived"
)

// Campaign is a detected coordinated influence campaign.
type Campaign struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ThreatLevel     ThreatLevel    `json:"threat_level"`
	Status          CampaignStatus `json:"status"`
	CampaignType    string         `json:"campaign_type"`
	DetectedAt      string         `json:"detected_at"`
	LastActivity    string         `json:"last_activity"`
	TotalPosts      int            `json:"total_posts"`
	TotalAccounts   int            `json:"total_accounts"`
	ReachEstimate   int            `json:"reach_estimate"`
	ConfidenceScore float64        `json:"confidence_score"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}
