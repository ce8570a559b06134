package service

import (
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// AccountService serves the monitored-account listing.
type AccountService struct {
	store  Datastore
	logger *zap.SugaredLogger
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(store Datastore, logger *zap.SugaredLogger) *AccountService {
	if store == nil {
		panic("store is required")
	}
	return &AccountService{store: store, logger: logger}
}

// AccountList is a filtered, enriched, paginated account listing.
type AccountList struct {
	Accounts   []query.AccountDetail `json:"accounts"`
	Pagination query.Pagination      `json:"pagination"`
}

// List returns accounts matching the filters, highest bot probability
// first, enriched with the distinct-campaign involvement count.
func (s *AccountService) List(f *core.AccountFilters) (*AccountList, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	accounts := query.FilterAccounts(ds.Accounts(), f)
	query.SortAccounts(accounts, "bot_probability", "desc")

	resolver := query.NewResolver(ds)
	enriched := resolver.EnrichAccounts(accounts)
	page, pagination := query.Paginate(enriched, f.Page, f.Limit)

	return &AccountList{Accounts: page, Pagination: pagination}, nil
}
