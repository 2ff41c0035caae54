package session

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// State is the process-wide session state: who is logged in, and
// whether a login attempt is in flight. The authenticated flag is
// derived, never stored, so it cannot drift from the identity.
type State struct {
	Identity *entity.User
	Loading  bool
}

// Authenticated reports whether an identity is present.
func (s State) Authenticated() bool {
	return s.Identity != nil
}
