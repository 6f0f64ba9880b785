package user

import (
	c "pagecms/internal/core/domain/common"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    c.Optional[time.Time]
	ActivatedAt  c.Optional[time.Time]
}

// IsActive reports whether the account went through a successful
// validation-token exchange. Fresh registrations are inactive.
func (u *User) IsActive() bool {
	return u.ActivatedAt.IsPresent
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
