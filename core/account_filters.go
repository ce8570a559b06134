package core

// AccountFilters defines the filtering and pagination options accepted by
// the account listing. MinBotProbability only constrains when strictly
// greater than zero; a zero threshold matches every account anyway and the
// frontend always submits the slider value.
type AccountFilters struct {
	AccountType       string  `json:"account_type"` // human, bot, suspicious, unknown
	MinBotProbability float64 `json:"min_bot_probability"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewAccountFilters creates AccountFilters with default values.
func NewAccountFilters() *AccountFilters {
	return &AccountFilters{
		AccountType: FilterAll,
		Page:        1,
		Limit:       20,
	}
}
