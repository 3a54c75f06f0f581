package auth

import "github.com/google/uuid"

// Caller roles carried in the token's role claim.
const (
	RoleTeam  = "team"
	RoleStaff = "staff"
)

// Identity is the resolved caller of a request: either one team or a
// staff member. Staff carry no team ID.
type Identity struct {
	TeamID uuid.UUID
	Staff  bool
}
