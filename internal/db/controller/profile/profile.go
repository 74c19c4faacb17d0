// Package profile provides lookups and provider synchronisation for profiles.
package profile

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProfileNotFound is returned when no profile matches.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrEmailEmpty is returned when a profile would be stored without email.
	ErrEmailEmpty = errors.New("profile email cannot be empty")
	// ErrEmailTaken is returned by Sync when the email belongs to a profile the identity can not claim.
	ErrEmailTaken = errors.New("email belongs to another account")
)

// External is an identity asserted by an identity provider.
type External struct {
	Source   models.AuthSource
	Subject  string
	Email    string
	FullName string

	AvatarURL string

	// EmailVerified is the provider's assertion that the subject owns Email.
	EmailVerified bool

	// Role asserted by the provider, empty or invalid keeps the stored role.
	Role models.UserRole
}

// Get retrieves a profile by id.
func Get(db *gorm.DB, id string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return first(db.Where("id = ?", id))
}

// GetByEmail retrieves a profile by email, case insensitive.
func GetByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if email == "" {
		return nil, ErrEmailEmpty
	}

	return first(db.Where("email = ?", normalizeEmail(email)))
}

// GetBySubject retrieves the profile a provider subject is linked to.
func GetBySubject(db *gorm.DB, source models.AuthSource, subject string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return first(db.Where("auth_source = ? AND user_id = ?", source, subject))
}

// Sync finds or creates the profile of an external identity and refreshes its data.
// A profile created earlier from a public form is linked by email, but only when
// the provider verified the email. Any other profile holding the email is left
// alone and Sync returns ErrEmailTaken.
func Sync(db *gorm.DB, ext External, defaultRole models.UserRole) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if ext.Email == "" {
		return nil, ErrEmailEmpty
	}

	var out *models.Profile

	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := GetBySubject(tx, ext.Source, ext.Subject)
		if errors.Is(err, ErrProfileNotFound) {
			p, err = claimByEmail(tx, ext)
		}

		switch {
		case errors.Is(err, ErrProfileNotFound):
			p = &models.Profile{Role: defaultRole}
		case err != nil:
			return err
		}

		p.UserID = ext.Subject
		p.AuthSource = ext.Source
		p.Email = normalizeEmail(ext.Email)
		p.Active = true

		if ext.FullName != "" {
			p.FullName = ext.FullName
		}

		if ext.AvatarURL != "" {
			p.AvatarURL = ext.AvatarURL
		}

		if ext.Role.Valid() {
			p.Role = ext.Role
		}

		if !p.Role.Valid() {
			p.Role = models.RolePotentialClient
		}

		if err = tx.Save(p).Error; err != nil {
			return err //nolint:wrapcheck
		}

		out = p

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return out, nil
}

// claimByEmail returns the inquiry profile ext may take over.
func claimByEmail(db *gorm.DB, ext External) (*models.Profile, error) {
	p, err := GetByEmail(db, ext.Email)
	if err != nil {
		return nil, err
	}

	if !ext.EmailVerified || p.AuthSource != models.AuthSourceInquiry {
		return nil, ErrEmailTaken
	}

	return p, nil
}

// EnsureInquirer returns the profile for email, creating a potential client if none exists.
// Contact details of existing profiles are only filled where empty.
func EnsureInquirer(db *gorm.DB, email, fullName, phone, company string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	p, err := GetByEmail(db, email)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		p = &models.Profile{
			Email:       normalizeEmail(email),
			FullName:    fullName,
			Phone:       phone,
			CompanyName: company,
			Role:        models.RolePotentialClient,
			AuthSource:  models.AuthSourceInquiry,
			Active:      true,
		}

		return p, db.Create(p).Error
	case err != nil:
		return nil, err
	}

	if p.Phone == "" && phone != "" {
		p.Phone = phone
	}

	if p.CompanyName == "" && company != "" {
		p.CompanyName = company
	}

	if p.FullName == "" {
		p.FullName = fullName
	}

	return p, db.Save(p).Error
}

// CreateLocal stores a password profile for the local identity provider.
func CreateLocal(db *gorm.DB, email, fullName, passwordHash string, role models.UserRole) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if email == "" {
		return nil, ErrEmailEmpty
	}

	p := &models.Profile{
		UserID:       normalizeEmail(email),
		Email:        normalizeEmail(email),
		FullName:     fullName,
		Role:         role,
		AuthSource:   models.AuthSourceLocal,
		PasswordHash: passwordHash,
		Active:       true,
	}

	if err := db.Create(p).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return p, nil
}

func first(q *gorm.DB) (*models.Profile, error) {
	var p models.Profile

	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, err //nolint:wrapcheck
	}

	return &p, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
