package admin

import "time"

// BranchAll is the sentinel scope granting visibility over every branch.
const BranchAll = "All"

const (
	RoleAdmissionClerk = "Admission Clerk"
	RoleHOD            = "HOD"
	RolePrincipal      = "Principal"
)

// Admin is a staff principal. Role is descriptive only; Branch scopes
// which student records the admin may list or mutate.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'Admission Clerk'" json:"role"`
	Branch    string    `gorm:"type:varchar(5);not null;default:'All'" json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
}
