package storage

import (
	"context"
)

// Logical keys used by the engagement store. Each holds a JSON-encoded list
// of integer ids.
const (
	KeyWatchlist        = "watchlist"
	KeyFollowedCreators = "followedCreators"
)

// SetStore is the durable key -> ordered-set-of-ids storage behind watchlist
// and follow membership. ReadSet is fail-open: an absent key or a value that
// does not parse as a list of integers reads as an empty set, never an error.
// WriteSet replaces the stored value in a single logical write.
//
// Derived operations (Contains, Add, Remove, Toggle) are read-modify-write
// and assume a single writer per viewer session.
type SetStore interface {
	ReadSet(ctx context.Context, key string) []int64
	WriteSet(ctx context.Context, key string, members []int64) error
}

// Contains reports whether id is a member of the stored set.
func Contains(ctx context.Context, s SetStore, key string, id int64) bool {
	for _, m := range s.ReadSet(ctx, key) {
		if m == id {
			return true
		}
	}
	return false
}

// Add appends id to the stored set if not already present.
func Add(ctx context.Context, s SetStore, key string, id int64) error {
	members := s.ReadSet(ctx, key)
	for _, m := range members {
		if m == id {
			return nil
		}
	}
	return s.WriteSet(ctx, key, append(members, id))
}

// Remove deletes id from the stored set, preserving the order of the rest.
func Remove(ctx context.Context, s SetStore, key string, id int64) error {
	members := s.ReadSet(ctx, key)
	kept := members[:0]
	for _, m := range members {
		if m != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return nil
	}
	return s.WriteSet(ctx, key, kept)
}

// Toggle flips id's membership and returns the new membership state.
func Toggle(ctx context.Context, s SetStore, key string, id int64) (bool, error) {
	if Contains(ctx, s, key, id) {
		return false, Remove(ctx, s, key, id)
	}
	return true, Add(ctx, s, key, id)
}
