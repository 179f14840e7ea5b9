package core

import "context"

// AttributesStore persists State per user. Implementations must be safe for
// concurrent use. Get returns the zero State when nothing is stored for the
// user. Short method names mirror the other store contracts.
type AttributesStore interface {
	Get(ctx context.Context, userID string) (State, error)
	Save(ctx context.Context, userID string, state State) error
	Delete(ctx context.Context, userID string) error
}
