package repository

import "context"

// Owned is the generic contract for ownership-scoped resources. Every read,
// update and delete filters by resource id AND owner id jointly, so a
// resource under a different owner is indistinguishable from a missing one.
//
// Implementations commit each mutation immediately and return the
// post-mutation row so server-assigned fields (id, timestamps, defaults) are
// never stale in the returned value.
type Owned[T any, C any, U any] interface {
	// Create persists a new resource attached to ownerID.
	Create(ctx context.Context, ownerID string, in C) (*T, error)
	// GetOwned returns the resource only when it belongs to ownerID.
	GetOwned(ctx context.Context, id, ownerID string) (*T, error)
	// ListOwned returns a page of the owner's resources in insertion order.
	ListOwned(ctx context.Context, ownerID string, offset, limit int) ([]*T, error)
	// Update merges the supplied fields of in into existing and persists the
	// result. Unset fields keep their prior values.
	Update(ctx context.Context, existing *T, in U) (*T, error)
	// Delete removes the owner's resource and returns its last-known state.
	Delete(ctx context.Context, id, ownerID string) (*T, error)
}
