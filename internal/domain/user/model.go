package user

import "time"

type User struct {
	ID               string
	Email            string
	Password         string // bcrypt hash
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
}

type View struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"emailConfirmedAt,omitempty"`
}

func (u User) ToView() View {
	return View{
		ID:               u.ID,
		Email:            u.Email,
		EmailConfirmedAt: u.EmailConfirmedAt,
	}
}

func (u User) Confirmed() bool {
	return u.EmailConfirmedAt != nil
}
