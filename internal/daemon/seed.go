package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db/controller/portfolio"
	"github.com/designspec/designspec-web/internal/db/controller/profile"
	"github.com/designspec/designspec-web/internal/db/models"
)

// showcase is the portfolio shown on a fresh install.
var showcase = []models.PortfolioItem{ //nolint:gochecknoglobals
	{
		Title:       "Modern Corporate Headquarters",
		Description: "A 15-story sustainable office building in Nairobi CBD",
		ServiceType: models.ServiceArchitecturalDesign,
		Images:      []string{"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=800&q=80"},
		Featured:    true,
		Location:    "Nairobi CBD",
	},
	{
		Title:       "Luxury Residential Interior",
		Description: "Contemporary living space with African influences",
		ServiceType: models.ServiceInteriorDesign,
		Images:      []string{"https://images.unsplash.com/photo-1600210492493-0946911123ea?w=800&q=80"},
		Featured:    true,
		Location:    "Karen, Nairobi",
	},
	{
		Title:       "Tatu City Master Plan",
		Description: "Urban planning for a mixed-use development",
		ServiceType: models.ServiceUrbanPlanning,
		Images:      []string{"https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?w=800&q=80"},
		Featured:    true,
		Location:    "Kiambu County",
	},
	{
		Title:       "Commercial Complex Development",
		Description: "End-to-end project management for retail and office space",
		ServiceType: models.ServiceProjectManagement,
		Images:      []string{"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&q=80"},
		Featured:    true,
		Location:    "Westlands, Nairobi",
	},
}

// seed fills an empty portfolio and creates the configured local admin.
func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := portfolio.Count(db)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if count == 0 {
		for i := range showcase {
			item := showcase[i]
			if err = portfolio.Create(db, &item); err != nil {
				return err //nolint:wrapcheck
			}
		}

		log.Info().Int("items", len(showcase)).Msg("seeded portfolio")
	}

	return seedAdmin(cfg.Auth.Local, db)
}

func seedAdmin(cfg config.LocalAuth, db *gorm.DB) error {
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return nil
	}

	_, err := profile.GetByEmail(db, cfg.AdminEmail)
	if err == nil {
		return nil
	}

	if !errors.Is(err, profile.ErrProfileNotFound) {
		return err //nolint:wrapcheck
	}

	if _, err = profile.CreateLocal(db, cfg.AdminEmail, "Administrator", cfg.AdminPasswordHash, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed admin profile: %w", err)
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("seeded local admin profile")

	return nil
}
