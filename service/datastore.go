// Package service implements the operations the HTTP layer exposes, one
// service per collection plus analytics. Each operation takes a single
// dataset snapshot up front and runs the query pipeline over it: filter,
// enrich, sort, paginate.
package service

import (
	"deeptrace/storage"
)

// Datastore provides dataset snapshots. Defined here (consumer package);
// *storage.Store satisfies it.
type Datastore interface {
	Snapshot() *storage.Dataset
}
