package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	IsTrusted    bool      `json:"is_trusted"`
	IsBanned     bool      `json:"is_banned"`
	BanReason    string    `json:"ban_reason,omitempty"`
	GPSWarnings  int       `json:"gps_warnings"`
	Coins        int       `json:"coins"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// AuditLog - запись о действии администратора
type AuditLog struct {
	ID         int64     `json:"id"`
	AdminID    uuid.UUID `json:"admin_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
