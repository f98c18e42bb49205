package auth

import (
	"time"
)

// User is the local auth account. It lives in this service's own
// database, not in Supabase; brokers in the CRM are a separate concept.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"type:text;not null" json:"-"` // Hidden from JSON
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest represents registration request payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	User        *User  `json:"user"`
}

// TokenClaims are the fields carried inside an access token.
type TokenClaims struct {
	UserID      uint
	Email       string
	IsSuperuser bool
}
