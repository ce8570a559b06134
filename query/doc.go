// Package query implements the read path over a loaded dataset snapshot:
// per-collection filtering, cross-collection enrichment, aggregation,
// stable sorting and pagination. Every function here is a pure computation
// over the records it is given; nothing in this package blocks, locks or
// mutates a stored collection.
package query
