package api

import (
	"net/http"
)

// getAccounts godoc
//
//	@Summary		List accounts
//	@Description	Returns monitored accounts, highest bot probability first
//	@Tags			accounts
//	@Produce		json
//	@Param			account_type		query	string	false	"Account type (human, bot, suspicious, unknown) or all"
//	@Param			min_bot_probability	query	number	false	"Minimum bot probability; zero disables the threshold"
//	@Param			page				query	int		false	"Page number"	default(1)
//	@Param			limit				query	int		false	"Page size"		default(20)
//	@Success		200	{object}	envelope
//	@Router			/api/accounts [get]
func (a *API) getAccounts(w http.ResponseWriter, r *http.Request) {
	filters := a.parseAccountFilters(r)
	list, err := a.accounts.List(filters)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list accounts", err)
		return
	}
	a.respondData(w, list, http.StatusOK)
}
