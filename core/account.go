package core

// AccountType is the analyst classification of an account.
type AccountType string

const (
	AccountTypeHuman      AccountType = "human"
	AccountTypeBot        AccountType = "bot"
	AccountTypeSuspicious AccountType = "suspicious"
	AccountTypeUnknown    AccountType = "unknown"
)

// Account is a monitored social-media account.
type Account struct {
	ID               string                 `json:"id"`
	Platform         Platform               `json:"platform"`
	PlatformUserID   string                 `json:"platform_user_id"`
	Username         string                 `json:"username"`
	AccountCreatedAt string                 `json:"account_created_at"`
	FollowerCount    int                    `json:"follower_count"`
	FollowingCount   int                    `json:"following_count"`
	PostCount        int                    `json:"post_count"`
	Verified         bool                   `json:"verified"`
	BotProbability   float64                `json:"bot_probability"`
	AccountType      AccountType            `json:"account_type"`
	RiskScore        float64                `json:"risk_score"`
	FirstSeen        string                 `json:"first_seen"`
	LastActive       string                 `json:"last_active"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	c := a
	if a.Metadata != nil {
		c.Metadata = make(map[string]interface{}, len(a.Metadata))
		for k, v := range a.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}
