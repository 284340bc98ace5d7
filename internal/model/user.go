package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRole       = errors.New("model: invalid user role")
	ErrInvalidUserStatus = errors.New("model: invalid user status")
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleUser    Role = "User"
	RoleManager Role = "Manager"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	default:
		return false
	}
}

// Badge is the lower-cased style class for the role badge.
func (r Role) Badge() string { return strings.ToLower(string(r)) }

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserActive, UserInactive:
		return true
	default:
		return false
	}
}

func (s UserStatus) Badge() string { return strings.ToLower(string(s)) }

type User struct {
	ID     int
	Name   string
	Email  string
	Role   Role
	Status UserStatus
}

func (u User) Validate() error {
	if u.ID <= 0 {
		return errors.New("model: user id must be positive")
	}
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("model: user name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("model: user email is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}
	if !u.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidUserStatus, u.Status)
	}
	return nil
}
