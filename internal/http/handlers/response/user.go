package response

import (
	"pagecms/internal/core/domain/user"
	"time"
)

type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.FirstName = du.FirstName
	u.LastName = du.LastName
	u.Role = string(du.Role)
	u.IsActive = du.IsActive()
	u.CreatedAt = du.CreatedAt
	if du.ActivatedAt.IsPresent {
		activatedAt := du.ActivatedAt.Value
		u.ActivatedAt = &activatedAt
	}
}

type Users struct {
	Users []User `json:"users"`
}

func (u *Users) FromDomainUsers(dus []user.User) {
	users := make([]User, 0, len(dus))
	for _, du := range dus {
		ru := User{}
		ru.FromDomainUser(du)
		users = append(users, ru)
	}
	u.Users = users
}
