package model

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// UserSession is the authenticated user's identity as reported by the
// backend's "who am I" endpoint.
type UserSession struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
