package types

import "github.com/golang-jwt/jwt/v5"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Claims is the JWT payload shared by student and admin tokens.
// AdminRole and Branch are only set on admin tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	AdminRole string `json:"admin_role,omitempty"`
	Branch    string `json:"branch,omitempty"`
	jwt.RegisteredClaims
}
