package uniclient

import "errors"

// ErrLoginRequired is returned when a workflow needs an identity and the
// provider has none. Callers should route the user to the login entry point.
var ErrLoginRequired = errors.New("login required")

// Identity is the current user's resolved identity
type Identity struct {
	UserID    int
	StudentID int
}

// IdentityProvider supplies the current user's identity to the workflows.
// Implementations must be safe for concurrent use.
type IdentityProvider interface {
	// Current returns the identity and true when a user is signed in,
	// or a zero identity and false otherwise
	Current() (Identity, bool)
}

// StaticIdentity is an IdentityProvider that always returns the same identity
type StaticIdentity struct {
	Identity Identity
}

func (s StaticIdentity) Current() (Identity, bool) {
	return s.Identity, true
}

// NoIdentity is an IdentityProvider with no signed-in user
type NoIdentity struct{}

func (NoIdentity) Current() (Identity, bool) {
	return Identity{}, false
}
