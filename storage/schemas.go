package storage

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON schemas for the five source collections. Validation is intentionally
// shallow: it checks that a source is an array of records carrying the
// identifier and foreign-key fields the query layer depends on. Extra
// fields are allowed so data exports can evolve without breaking loads.
const (
	campaignsSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "title", "threat_level", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"title": {"type": "string"},
				"threat_level": {"enum": ["low", "medium", "high", "critical"]},
				"status": {"enum": ["active", "monitoring", "resolved", "archived"]}
			}
		}
	}`

	postsSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "account_id", "platform", "posted_at"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"account_id": {"type": "string", "minLength": 1},
				"campaign_id": {"type": ["string", "null"]},
				"platform": {"type": "string"},
				"posted_at": {"type": "string"}
			}
		}
	}`

	accountsSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "username", "platform"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"username": {"type": "string"},
				"platform": {"type": "string"},
				"bot_probability": {"type": "number", "minimum": 0, "maximum": 100}
			}
		}
	}`

	threatScoresSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "campaign_id", "overall_threat_score"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"campaign_id": {"type": "string", "minLength": 1},
				"overall_threat_score": {"type": "number"}
			}
		}
	}`

	reportsSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "title", "report_type", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"title": {"type": "string"},
				"campaign_id": {"type": ["string", "null"]},
				"report_type": {"type": "string"},
				"status": {"enum": ["draft", "published", "archived"]}
			}
		}
	}`
)

// collectionSchemas maps logical collection names to their schema.
var collectionSchemas = map[string]string{
	CollectionCampaigns:    campaignsSchema,
	CollectionPosts:        postsSchema,
	CollectionAccounts:     accountsSchema,
	CollectionThreatScores: threatScoresSchema,
	CollectionReports:      reportsSchema,
}

// CollectionNames lists the five collections in canonical order.
var CollectionNames = []string{
	CollectionCampaigns,
	CollectionPosts,
	CollectionAccounts,
	CollectionThreatScores,
	CollectionReports,
}

// ValidateCollection checks a raw collection document against its schema
// and returns one error per violation.
func ValidateCollection(name string, doc []byte) []error {
	schema, ok := collectionSchemas[name]
	if !ok {
		return []error{fmt.Errorf("unknown collection %q", name)}
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return []error{fmt.Errorf("failed to parse %s: %w", name, err)}
	}
	var errs []error
	for _, desc := range result.Errors() {
		errs = append(errs, fmt.Errorf("%s: %s", desc.Field(), desc.Description()))
	}
	return errs
}
