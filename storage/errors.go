package storage

import "errors"

// Storage error constants
var (
	// ErrCampaignNotFound is returned when a campaign is not found
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrPostNotFound is returned when a post is not found
	ErrPostNotFound = errors.New("post not found")

	// ErrAccountNotFound is returned when an account is not found
	ErrAccountNotFound = errors.New("account not found")

	// ErrThreatScoreNotFound is returned when no threat score exists for a campaign
	ErrThreatScoreNotFound = errors.New("threat score not found")

	// ErrReportNotFound is returned when a report is not found
	ErrReportNotFound = errors.New("report not found")

	// ErrNotLoaded is returned when the store is queried before the first load
	ErrNotLoaded = errors.New("dataset not loaded")
)
