package i

import (
	"context"

	"github.com/beka-birhanu/icare/route"
)

// DraftStore keeps the proposal each player is currently authoring.
type DraftStore interface {
	// Load returns a snapshot of the draft stored under key. A missing draft
	// is an empty one.
	Load(ctx context.Context, key string) (route.Steps, error)

	// Update runs edit on the draft under an exclusive lock and stores the
	// result when edit returns nil. It returns the stored snapshot.
	Update(ctx context.Context, key string, edit func(*route.Proposal) error) (route.Steps, error)

	// Take returns the draft under the same lock Update uses, so the
	// snapshot never observes a half applied edit.
	Take(ctx context.Context, key string) (route.Steps, error)
}
