// Package core defines the entity types shared across the DeepTrace
// backend: campaigns, posts, accounts, threat scores and reports, together
// with the per-collection filter structs consumed by the query layer.
//
// All timestamps are ISO-8601 UTC strings as delivered by the source
// provider. Comparing them lexicographically is valid because every record
// uses the same format and time zone.
package core
