package core

// Platform identifies the social network a post or account belongs to.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformFacebook Platform = "facebook"
	PlatformReddit   Platform = "reddit"
	PlatformTelegram Platform = "telegram"
	PlatformOther    Platform = "other"
)

// Post is a single collected social-media post. CampaignID is empty for
// organic posts that were not attributed to any campaign; AccountID is
// always expected to be set.
type Post struct {
	ID              string   `json:"id"`
	CampaignID      string   `json:"campaign_id,omitempty"`
	AccountID       string   `json:"account_id"`
	Platform        Platform `json:"platform"`
	PlatformPostID  string   `json:"platform_post_id"`
	Content         string   `json:"content"`
	ContentHash     string   `json:"content_hash"`
	MediaURLs       []string `json:"media_urls"`
	Hashtags        []string `json:"hashtags"`
	Mentions        []string `json:"mentions"`
	PostedAt        string   `json:"posted_at"`
	EngagementCount int      `json:"engagement_count"`
	SentimentScore  float64  `json:"sentiment_score"`
	IsFlagged       bool     `json:"is_flagged"`
	CreatedAt       string   `json:"created_at"`
}

// Clone returns a deep copy of the post. The store hands out clones so
// callers can never mutate the loaded collection through a returned slice.
func (p Post) Clone() Post {
	c := p
	c.MediaURLs = append([]string(nil), p.MediaURLs...)
	c.Hashtags = append([]string(nil), p.Hashtags...)
	c.Mentions = append([]string(nil), p.Mentions...)
	return c
}
