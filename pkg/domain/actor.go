package domain

// Actor is the credential a presentation layer passes to registry operations.
// The registry trusts the identity as given and checks only the role.
type Actor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// ActorFor derives the acting credential for a staff member.
func ActorFor(s Staff) Actor {
	return Actor{ID: s.ID, Name: s.Name, Username: s.Username, Role: s.Role}
}

// IsZero reports whether the actor carries no identity at all.
func (a Actor) IsZero() bool {
	return a.ID == "" && a.Username == "" && a.Role == ""
}

// HasRole reports whether the actor is identified and holds one of roles.
func (a Actor) HasRole(roles ...Role) bool {
	if a.IsZero() || a.ID == "" || !a.Role.Valid() {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Authorize returns an AuthorizationError unless the actor holds one of roles.
func Authorize(operation string, actor Actor, roles ...Role) error {
	if actor.HasRole(roles...) {
		return nil
	}
	required := append([]Role(nil), roles...)
	return &AuthorizationError{Operation: operation, Required: required, Actor: actor}
}
