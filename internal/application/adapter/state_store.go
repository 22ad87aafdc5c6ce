// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Record is one keyed document written to the state store.
type Record struct {
	Key   string
	Value []byte
}

// StateStore defines the key-value persistence port for user state.
type StateStore interface {
	// Load returns the document stored under key. A missing key is reported with found=false, not an error.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)

	// Save writes all records atomically: either every record is stored or none is.
	Save(ctx context.Context, records ...Record) error
}
