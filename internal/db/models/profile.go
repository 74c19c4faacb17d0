package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AuthSource tells which identity provider owns a profile.
type AuthSource string

const (
	// AuthSourceLocal profiles log in with a password hash stored here.
	AuthSourceLocal AuthSource = "local"
	// AuthSourceOIDC profiles are created from an OpenID Connect login.
	AuthSourceOIDC AuthSource = "oidc"
	// AuthSourceInquiry profiles were created from a public form and can not log in yet.
	AuthSourceInquiry AuthSource = "inquiry"
)

// Profile is a person known to the firm: client, staff, partner or admin.
type Profile struct {
	Base
	// UserID is the subject at the identity provider (OIDC sub claim).
	UserID      string     `gorm:"size:255;index" json:"user_id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName    string     `gorm:"size:200" json:"full_name"`
	Phone       string     `gorm:"size:50" json:"phone,omitempty"`
	Role        UserRole   `gorm:"type:varchar(30);not null;default:'potential_client'" json:"role"`
	AvatarURL   string     `gorm:"size:500" json:"avatar_url,omitempty"`
	CompanyName string     `gorm:"size:200" json:"company_name,omitempty"`
	AuthSource  AuthSource `gorm:"type:varchar(20);not null;default:'inquiry'" json:"-"`
	// PasswordHash is the argon2id hash, only set for local profiles.
	PasswordHash string `gorm:"size:255" json:"-"`
	Active       bool   `gorm:"not null;default:true" json:"-"`
}

// HashPassword hashes a plaintext password with argon2id default parameters.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword checks password against the stored hash in constant time.
func (p *Profile) VerifyPassword(password string) bool {
	if p.PasswordHash == "" {
		return false
	}

	match, err := argon2id.ComparePasswordAndHash(password, p.PasswordHash)
	if err != nil {
		log.Error().Err(err).Str("profile_id", p.ID).Msg("failed to verify password")
		return false
	}

	return match
}
