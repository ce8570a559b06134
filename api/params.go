package api

import (
	"net/http"
	"strconv"

	"deeptrace/core"
)

// maxPage caps the page parameter to keep offset arithmetic sane.
const maxPage = 1000000

// parsePage extracts the 1-based page query parameter.
func parsePage(r *http.Request) int {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			if parsed > maxPage {
				parsed = maxPage
			}
			page = parsed
		}
	}
	return page
}

// parseLimit extracts the limit query parameter, capped at maxLimit.
func parseLimit(r *http.Request, defaultLimit, maxLimit int) int {
	limit := defaultLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
			if limit > maxLimit {
				limit = maxLimit
			}
		}
	}
	return limit
}

// queryDefault returns a query parameter or a default when absent.
func queryDefault(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

// parseCampaignFilters extracts the campaign listing parameters. Absent
// filters keep the "all" sentinel, which matches every record.
func (a *API) parseCampaignFilters(r *http.Request) *core.CampaignFilters {
	f := core.NewCampaignFilters()
	f.Status = queryDefault(r, "status", f.Status)
	f.ThreatLevel = queryDefault(r, "threat_level", f.ThreatLevel)
	f.CampaignType = queryDefault(r, "campaign_type", f.CampaignType)
	f.SortBy = queryDefault(r, "sort_by", f.SortBy)
	f.SortOrder = queryDefault(r, "sort_order", f.SortOrder)
	f.Page = parsePage(r)
	f.Limit = parseLimit(r, a.config.API.DefaultLimit, a.config.API.MaxLimit)
	return f
}

// parsePostFilters extracts the post listing parameters. is_flagged is
// three-valued: absent means no constraint, otherwise true/false.
func (a *API) parsePostFilters(r *http.Request) *core.PostFilters {
	f := core.NewPostFilters()
	f.Platform = queryDefault(r, "platform", f.Platform)
	f.Search = r.URL.Query().Get("search")
	if v := r.URL.Query().Get("is_flagged"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			f.IsFlagged = &parsed
		}
	}
	f.Page = parsePage(r)
	f.Limit = parseLimit(r, a.config.API.DefaultLimit, a.config.API.MaxLimit)
	return f
}

// parseAccountFilters extracts the account listing parameters.
func (a *API) parseAccountFilters(r *http.Request) *core.AccountFilters {
	f := core.NewAccountFilters()
	f.AccountType = queryDefault(r, "account_type", f.AccountType)
	if v := r.URL.Query().Get("min_bot_probability"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			f.MinBotProbability = parsed
		}
	}
	f.Page = parsePage(r)
	f.Limit = parseLimit(r, a.config.API.DefaultLimit, a.config.API.MaxLimit)
	return f
}

// parseReportFilters extracts the report listing parameters. The report
// default page size is smaller than the other listings.
func (a *API) parseReportFilters(r *http.Request) *core.ReportFilters {
	f := core.NewReportFilters()
	f.Status = queryDefault(r, "status", f.Status)
	f.Severity = queryDefault(r, "severity", f.Severity)
	f.ReportType = queryDefault(r, "report_type", f.ReportType)
	f.Page = parsePage(r)
	f.Limit = parseLimit(r, f.Limit, a.config.API.MaxLimit)
	return f
}
