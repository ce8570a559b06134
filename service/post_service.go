package service

import (
	"deeptrace/core"
	"deeptrace/query"
	"deeptrace/storage"

	"go.uber.org/zap"
)

// PostService serves the cross-campaign post listing.
type PostService struct {
	store  Datastore
	logger *zap.SugaredLogger
}

// NewPostService creates a new PostService instance.
func NewPostService(store Datastore, logger *zap.SugaredLogger) *PostService {
	if store == nil {
		panic("store is required")
	}
	return &PostService{store: store, logger: logger}
}

// PostList is a filtered, enriched, paginated post listing.
type PostList struct {
	Posts      []query.PostDetail `json:"posts"`
	Pagination query.Pagination   `json:"pagination"`
}

// List returns posts matching the filters, most recent first, enriched with
// campaign titles and author usernames.
func (s *PostService) List(f *core.PostFilters) (*PostList, error) {
	ds := s.store.Snapshot()
	if ds == nil {
		return nil, storage.ErrNotLoaded
	}

	posts := query.FilterPosts(ds.Posts(), f)
	query.SortPosts(posts, "posted_at", "desc")

	resolver := query.NewResolver(ds)
	enriched := resolver.EnrichPosts(posts)
	page, pagination := query.Paginate(enriched, f.Page, f.Limit)

	return &PostList{Posts: page, Pagination: pagination}, nil
}
