package domain

// Actor is a resolved user as seen by the workflow: identity, team
// membership and reporting line. It is supplied by the actor directory.
type Actor struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	TeamID      int64
	ManagerID   *string
	IsManager   bool
}

// Authorize checks that an actor may act on a request: the actor's team must
// currently own the request, and the request must still be active.
// Assignment to a specific user is deliberately not enforced here; team
// ownership is the authorization boundary.
func Authorize(actor *Actor, r *Request) error {
	if r.TeamID() == nil || actor.TeamID != *r.TeamID() {
		return ErrTeamMismatch
	}
	if !r.Active() {
		return ErrRequestInactive
	}
	return nil
}
