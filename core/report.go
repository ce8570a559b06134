package core

// ReportType categorizes analyst reports.
type ReportType string

const (
	ReportTypeCampaignAnalysis ReportType = "campaign_analysis"
	ReportTypeThreatSummary    ReportType = "threat_summary"
	ReportTypeTrendReport      ReportType = "trend_report"
	ReportTypeCustom           ReportType = "custom"
)

// ReportStatus tracks the publication state of a report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusPublished ReportStatus = "published"
	ReportStatusArchived  ReportStatus = "archived"
)

// Severity grades report findings.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Report is an analyst-authored intelligence report, optionally tied to a
// campaign.
type Report struct {
	ID          string       `json:"id"`
	CampaignID  string       `json:"campaign_id,omitempty"`
	ReportType  ReportType   `json:"report_type"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Severity    Severity     `json:"severity"`
	Status      ReportStatus `json:"status"`
	Tags        []string     `json:"tags"`
	GeneratedBy string       `json:"generated_by"`
	GeneratedAt string       `json:"generated_at"`
	PublishedAt string       `json:"published_at,omitempty"`
	ViewsCount  int          `json:"views_count"`
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	c := r
	c.Tags = append([]string(nil), r.Tags...)
	return c
}
