package models

import (
	"strings"
	"time"

	"github.com/ezycar/booking-api/internal/api/validate"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) Validate() error {
	var errs validate.Errs
	if e := validate.Required("name", u.Name); e != nil {
		errs = append(errs, *e)
	}
	if !strings.Contains(u.Email, "@") {
		errs = append(errs, validate.ErrField{Field: "email", Msg: "invalid email"})
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserSummary is the projection embedded into admin booking listings.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID   string
	Role string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
