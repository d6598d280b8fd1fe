package models

// Role values as issued by the server in both tokens and user records.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is an account record as seen in the admin dashboard.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// ToggledRole returns the opposite of the given role: ADMIN becomes USER
// and anything else becomes ADMIN.
func ToggledRole(role string) string {
	if role == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}
