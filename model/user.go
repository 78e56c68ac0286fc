package model

import "time"

// User is an account on the marketplace. Password is never serialized, so
// any User written to a response is already stripped of it.
type User struct {
	ID           uint64    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Password     string    `db:"password" json:"-"`
	Email        string    `db:"email" json:"email"`
	FullName     *string   `db:"full_name" json:"fullName"`
	Phone        *string   `db:"phone" json:"phone"`
	ProfileImage *string   `db:"profile_image" json:"profileImage"`
	IsVendor     bool      `db:"is_vendor" json:"isVendor"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// UserFilter for querying a single user. Username and Email match case-insensitively.
type UserFilter struct {
	ID       uint64
	Username string
	Email    string
}

// UserPatch holds the fields of a partial user update; nil means unchanged.
type UserPatch struct {
	Username     *string `json:"username" validate:"omitempty,min=1"`
	Password     *string `json:"password" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	FullName     *string `json:"fullName"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	IsVendor     *bool   `json:"isVendor"`
}

// Apply merges the non-nil fields of the patch onto u.
func (p *UserPatch) Apply(u *User) {
	if p == nil {
		return
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = p.FullName
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if p.IsVendor != nil {
		u.IsVendor = *p.IsVendor
	}
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	FullName     *string `json:"fullName"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	IsVendor     bool    `json:"isVendor"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the user (without password) plus the session token.
type LoginResponse struct {
	User
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
