package constants

// Role tags carried on the users table. Role is an explicit column, not
// derived from which sub-profile row happens to exist.
const (
	RoleStudent  = "STUDENT"
	RoleLecturer = "LECTURER"
)
