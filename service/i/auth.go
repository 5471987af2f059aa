package i

import (
	"context"

	"github.com/beka-birhanu/icare/identity"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	Register(ctx context.Context, name, password string) (*identity.Player, error)
	SignIn(ctx context.Context, name, password string) (*identity.Player, string, error)
}
