package service

import (
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// ReportService serves intelligence report listings and details.
type ReportService struct {
	store  Datastore
	logger *zap.SugaredLogger
}

// NewReportService creates a new ReportService instance.
func NewReportService(store Datastore, logger *zap.SugaredLogger) *ReportService {
	if store == nil {
		panic("store is required")
	}
	return &ReportService{store: store, logger: logger}
}

// ReportList is a filtered, enriched, paginated report listing.
type ReportList struct {
	Reports    []query.ReportDetail `json:"reports"`
	Pagination query.Pagination     `json:"pagination"`
}

// List returns reports matching the filters, most recently generated first,
// enriched with campaign titles.
func (s *ReportService) List(f *core.ReportFilters) (*ReportList, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	reports := query.FilterReports(ds.Reports(), f)
	query.SortReports(reports, "generated_at", "desc")

	resolver := query.NewResolver(ds)
	enriched := resolver.EnrichReports(reports)
	page, pagination := query.Paginate(enriched, f.Page, f.Limit)

	return &ReportList{Reports: page, Pagination: pagination}, nil
}

// Get returns one enriched report, or storage.ErrReportNotFound.
func (s *ReportService) Get(id string) (*query.ReportDetail, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	report, err := ds.ReportByID(id)
	if err != nil {
		return nil, err
	}

	resolver := query.NewResolver(ds)
	detail := resolver.EnrichReport(*report)
	return &detail, nil
}
