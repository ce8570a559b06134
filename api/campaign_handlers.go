package api

import (
	"errors"
	"net/http"

	"deeptrace/storage"

	"github.com/gorilla/mux"
)

// getCampaigns godoc
//
//	@Summary		List campaigns
//	@Description	Returns detected campaigns with filtering, sorting and pagination
//	@Tags			campaigns
//	@Produce		json
//	@Param			status			query	string	false	"Campaign status (active, monitoring, archived, neutralized) or all"
//	@Param			threat_level	query	string	false	"Threat level (low, medium, high, critical) or all"
//	@Param			campaign_type	query	string	false	"Campaign type or all"
//	@Param			sort_by			query	string	false	"Sort field"	default(detected_at)
//	@Param			sort_order		query	string	false	"asc or desc"	default(desc)
//	@Param			page			query	int		false	"Page number"	default(1)
//	@Param			limit			query	int		false	"Page size"		default(20)
//	@Success		200	{object}	envelope
//	@Router			/api/campaigns [get]
func (a *API) getCampaigns(w http.ResponseWriter, r *http.Request) {
	filters := a.parseCampaignFilters(r)
	list, err := a.campaigns.List(filters)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list campaigns", err)
		return
	}
	a.respondData(w, list, http.StatusOK)
}

// getCampaign godoc
//
//	@Summary		Get campaign detail
//	@Description	Returns one campaign with its threat analysis, top hashtags, platform breakdown and timeline
//	@Tags			campaigns
//	@Produce		json
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	envelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/api/campaigns/{id} [get]
func (a *API) getCampaign(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detail, err := a.campaigns.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrCampaignNotFound) {
			a.writeError(w, http.StatusNotFound, "not_found", "Campaign not found", nil)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get campaign", err)
		return
	}
	a.respondData(w, detail, http.StatusOK)
}

// getCampaignPosts godoc
//
//	@Summary		List campaign posts
//	@Description	Returns the posts of one campaign, enriched with author usernames
//	@Tags			campaigns
//	@Produce		json
//	@Param			id		path	string	true	"Campaign ID"
//	@Param			sort_by	query	string	false	"posted_at or engagement_count"	default(posted_at)
//	@Param			page	query	int		false	"Page number"					default(1)
//	@Param			limit	query	int		false	"Page size"						default(20)
//	@Success		200	{object}	envelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/api/campaigns/{id}/posts [get]
func (a *API) getCampaignPosts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	page := parsePage(r)
	limit := parseLimit(r, a.config.API.DefaultLimit, a.config.API.MaxLimit)
	sortBy := queryDefault(r, "sort_by", "posted_at")

	posts, err := a.campaigns.GetPosts(id, page, limit, sortBy)
	if err != nil {
		if errors.Is(err, storage.ErrCampaignNotFound) {
			a.writeError(w, http.StatusNotFound, "not_found", "Campaign not found", nil)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list campaign posts", err)
		return
	}
	a.respondData(w, posts, http.StatusOK)
}

// getCampaignAccounts godoc
//
//	@Summary		List campaign accounts
//	@Description	Returns the accounts involved in one campaign with bot share and the network graph
//	@Tags			campaigns
//	@Produce		json
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	envelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/api/campaigns/{id}/accounts [get]
func (a *API) getCampaignAccounts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	accounts, err := a.campaigns.GetAccounts(id)
	if err != nil {
		if errors.Is(err, storage.ErrCampaignNotFound) {
			a.writeError(w, http.StatusNotFound, "not_found", "Campaign not found", nil)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list campaign accounts", err)
		return
	}
	a.respondData(w, accounts, http.StatusOK)
}
