package core

// PostFilters defines the filtering and pagination options accepted by the
// post listing. IsFlagged is three-valued: nil means no constraint.
type PostFilters struct {
	Platform  string `json:"platform"` // twitter, facebook, reddit, telegram, other
	IsFlagged *bool  `json:"is_flagged"`
	Search    string `json:"search"` // case-insensitive substring over content

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPostFilters creates PostFilters with default values.
func NewPostFilters() *PostFilters {
	return &PostFilters{
		Platform: FilterAll,
		Page:     1,
		Limit:    20,
	}
}
