package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
	RoleCompany    Role = "company"
)

// Valid reports whether r is one of the known platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent, RoleCompany:
		return true
	}
	return false
}

// Staff roles manage courses and see unreleased content.
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleInstructor
}

type User struct {
	ID         int64     `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"`
	Role       Role      `json:"role" db:"role"`
	ProfilePic string    `json:"profile_pic" db:"profile_pic"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSignup struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserUpdate struct {
	Name        string `json:"name" validate:"omitempty,max=120"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	OldPassword string `json:"old_password"`
}

type RoleUpdate struct {
	Role Role `json:"role" validate:"required,oneof=admin instructor student company"`
}

// TeamMember is the public view of staff shown on the team page.
type TeamMember struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	ProfilePic string `json:"profile_pic"`
}

func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("invalid user details: name, email, and password are required")
	}

	var userID string
	switch role {
	case RoleAdmin:
		userID = "ADM-" + uuid.New().String()
	case RoleInstructor:
		userID = "INS-" + uuid.New().String()
	case RoleStudent:
		userID = "STU-" + uuid.New().String()
	case RoleCompany:
		userID = "CMP-" + uuid.New().String()
	default:
		return nil, errors.New("invalid role")
	}

	now := time.Now().UTC()
	return &User{
		UserID:    userID,
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
