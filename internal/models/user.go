package models

import "time"

// User roles
const (
	RoleOwner        = "owner"
	RoleFrontDesk    = "front_desk"
	RoleFieldOfficer = "field_officer"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"` // owner, front_desk or field_officer
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"` // S3 URL for profile image
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateUserRequest represents the request body for creating an employee
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
}

// UpdateUserRequest represents the request body for updating an employee
type UpdateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"` // Optional
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleFrontDesk || role == RoleFieldOfficer
}
