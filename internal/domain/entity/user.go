package entity

import "time"

// Roles válidos para User. Cualquier rol distinto de admin es restringido.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario ve todos los datos.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
