package api

import (
	"net/http"
)

// getPosts godoc
//
//	@Summary		List posts
//	@Description	Returns posts across all campaigns, enriched with campaign titles and author usernames
//	@Tags			posts
//	@Produce		json
//	@Param			platform	query	string	false	"Platform (twitter, facebook, reddit, telegram, other) or all"
//	@Param			is_flagged	query	bool	false	"Only flagged (true) or only unflagged (false) posts"
//	@Param			search		query	string	false	"Case-insensitive substring over content"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			limit		query	int		false	"Page size"		default(20)
//	@Success		200	{object}	envelope
//	@Router			/api/posts [get]
func (a *API) getPosts(w http.ResponseWriter, r *http.Request) {
	filters := a.parsePostFilters(r)
	list, err := a.posts.List(filters)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list posts", err)
		return
	}
	a.respondData(w, list, http.StatusOK)
}
