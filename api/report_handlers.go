package api

import (
	"errors"
	"net/http"

	"deeptrace/storage"

	"github.com/gorilla/mux"
)

// getReports godoc
//
//	@Summary		List reports
//	@Description	Returns intelligence reports, most recently generated first
//	@Tags			reports
//	@Produce		json
//	@Param			status		query	string	false	"Report status"	default(published)
//	@Param			severity	query	string	false	"Severity or all"
//	@Param			report_type	query	string	false	"Report type or all"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			limit		query	int		false	"Page size"		default(10)
//	@Success		200	{object}	envelope
//	@Router			/api/reports [get]
func (a *API) getReports(w http.ResponseWriter, r *http.Request) {
	filters := a.parseReportFilters(r)
	list, err := a.reports.List(filters)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list reports", err)
		return
	}
	a.respondData(w, list, http.StatusOK)
}

// getReport godoc
//
//	@Summary		Get report
//	@Description	Returns one intelligence report with resolved campaign titles
//	@Tags			reports
//	@Produce		json
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	envelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/api/reports/{id} [get]
func (a *API) getReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	report, err := a.reports.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrReportNotFound) {
			a.writeError(w, http.StatusNotFound, "not_found", "Report not found", nil)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get report", err)
		return
	}
	a.respondData(w, report, http.StatusOK)
}
