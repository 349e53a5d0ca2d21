package models

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User is the already-authenticated caller as extracted from the bearer
// token. The service only authorizes; it never authenticates.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
