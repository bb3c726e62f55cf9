package domain

import "errors"

// Role identifies which side of the marketplace an actor belongs to.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleBusiness   Role = "BUSINESS"
	RoleConsultant Role = "CONSULTANT"
)

var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether r is one of the three marketplace roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleBusiness || r == RoleConsultant
}

// User models an actor in the system. Users are created at seed time and are
// never deleted; the only mutation after that is an avatar update.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"` // URL or data URI
	Email  string `json:"email,omitempty"`
}
