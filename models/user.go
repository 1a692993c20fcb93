package models

import (
	"time"

	"github.com/phylax/contracts/schema"
)

// Owner: backend (auth service).

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleOperator   UserRole = "operator"
	RoleFieldAgent UserRole = "field_agent"
)

func (UserRole) Values() []string {
	return []string{string(RoleAdmin), string(RoleOperator), string(RoleFieldAgent)}
}

func (r UserRole) IsValid() bool { return schema.IsMember(string(r), r.Values()) }

func ParseUserRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.IsValid() {
		return "", schema.Invalid("UserRole", "", "value not in allowed set [admin, operator, field_agent]")
	}
	return r, nil
}

func (r UserRole) CanAccessDashboard() bool { return r == RoleAdmin || r == RoleOperator }

func (r UserRole) CanAccessFieldAgentView() bool { return r == RoleAdmin || r == RoleFieldAgent }

func (r UserRole) CanAccessAdminSettings() bool { return r == RoleAdmin }

// User is an account. PasswordHash is read on construction for the auth service
// but never written to JSON or BSON output.
type User struct {
	ID           string         `json:"id" contract:"id,required,bson=_id"`
	Email        string         `json:"email" contract:"email,required"`
	PasswordHash *string        `json:"-" contract:"password_hash,exclude"`
	Name         string         `json:"name" contract:"name,required"`
	Role         UserRole       `json:"role" contract:"role,required" validate:"enum"`
	AssetID      *string        `json:"assetId" contract:"asset_id"`
	Active       bool           `json:"active" contract:"active,required"`
	CreatedAt    time.Time      `json:"createdAt" contract:"created_at,required"`
	UpdatedAt    time.Time      `json:"updatedAt" contract:"updated_at,required"`
	LastLoginAt  *time.Time     `json:"lastLoginAt" contract:"last_login_at"`
	Metadata     map[string]any `json:"metadata" contract:"metadata"`
}

func (u *User) HasRole(role UserRole) bool { return u.Role == role }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u *User) IsOperator() bool { return u.Role == RoleOperator }

func (u *User) IsFieldAgent() bool { return u.Role == RoleFieldAgent }

func (u *User) CanAccessDashboard() bool { return u.Role.CanAccessDashboard() }

func (u *User) CanAccessFieldAgentView() bool { return u.Role.CanAccessFieldAgentView() }

func (u *User) CanAccessAdminSettings() bool { return u.Role.CanAccessAdminSettings() }

type UserSession struct {
	ID        string    `json:"id" contract:"id,required,bson=_id"`
	UserID    string    `json:"userId" contract:"user_id,required"`
	Token     string    `json:"token" contract:"token,required"`
	ExpiresAt time.Time `json:"expiresAt" contract:"expires_at,required"`
	CreatedAt time.Time `json:"createdAt" contract:"created_at,required"`
	IPAddress *string   `json:"ipAddress" contract:"ip_address"`
	UserAgent *string   `json:"userAgent" contract:"user_agent"`
}

func (s *UserSession) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }
