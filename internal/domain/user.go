package domain

import "time"

// Role ids are fixed reference data seeded at install time.
const (
	RoleAdmin        int64 = 1
	RoleAdvisor      int64 = 2
	RoleReceptionist int64 = 3
	RoleForeman      int64 = 4
	RoleTechnician   int64 = 5
)

type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type User struct {
	ID         int64      `json:"id"`
	FullName   string     `json:"full_name" validate:"required,max=150"`
	Username   string     `json:"username" validate:"required,max=50"`
	RoleID     int64      `json:"role_id" validate:"required"`
	Active     bool       `json:"active"`
	LastAccess *time.Time `json:"last_access,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	CreatedBy  *int64     `json:"created_by,omitempty"`
}

func (u *User) IsForeman() bool    { return u.RoleID == RoleForeman }
func (u *User) IsTechnician() bool { return u.RoleID == RoleTechnician }
