package core

// ReportFilters defines the filtering and pagination options accepted by
// the report listing.
type ReportFilters struct {
	Status     string `json:"status"`   // draft, published, archived
	Severity   string `json:"severity"` // info, low, medium, high, critical
	ReportType string `json:"report_type"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewReportFilters creates ReportFilters with default values. Listings
// default to published reports only.
func NewReportFilters() *ReportFilters {
	return &ReportFilters{
		Status:     string(ReportStatusPublished),
		Severity:   FilterAll,
		ReportType: FilterAll,
		Page:       1,
		Limit:      10,
	}
}
