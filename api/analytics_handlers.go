package api

import (
	"net/http"
)

// getAnalyticsOverview godoc
//
//	@Summary		Dashboard overview
//	@Description	Returns the headline statistics, threat distribution, platform breakdown, recent activity and trend data
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Router			/api/analytics/overview [get]
func (a *API) getAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := a.analytics.Overview()
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to compute analytics overview", err)
		return
	}
	a.respondData(w, overview, http.StatusOK)
}

// getThreatAnalytics godoc
//
//	@Summary		Threat analytics
//	@Description	Returns threat trends, campaign type distribution and top threat indicators
//	@Tags			analytics
//	@Produce		json
//	@Param			period	query	string	false	"Trend period (24h, 7d, 30d, all)"	default(7d)
//	@Success		200	{object}	envelope
//	@Router			/api/analytics/threats [get]
func (a *API) getThreatAnalytics(w http.ResponseWriter, r *http.Request) {
	period := queryDefault(r, "period", "7d")
	analytics, err := a.analytics.Threats(period)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to compute threat analytics", err)
		return
	}
	a.respondData(w, analytics, http.StatusOK)
}
