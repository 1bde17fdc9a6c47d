package repository

import "errors"

var (
	// ErrStoreNotFound is returned when the ticket store file does not exist.
	// The store is created by the seed command; its absence is a hard
	// precondition failure, not something the query layer recovers from.
	ErrStoreNotFound = errors.New("ticket store not found")

	// ErrStoreFailure tags any underlying storage-engine error surfaced by
	// a repository so callers can discriminate it from validation failures.
	ErrStoreFailure = errors.New("store failure")
)
