// Package portfolio reads and writes showcased projects.
package portfolio

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Featured returns up to limit featured items, newest first.
func Featured(db *gorm.DB, limit int) ([]models.PortfolioItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.PortfolioItem

	err := db.Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load featured portfolio: %w", err)
	}

	return items, nil
}

// List returns one page of items, optionally filtered by service type.
// page starts at 1; pageSize is clamped to catalog.MaxPageSize.
func List(db *gorm.DB, service models.ServiceType, page, pageSize int) (models.PaginatedResponse[models.PortfolioItem], error) {
	out := models.PaginatedResponse[models.PortfolioItem]{}

	if db == nil {
		return out, ErrDBNil
	}

	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}

	if pageSize > catalog.MaxPageSize {
		pageSize = catalog.MaxPageSize
	}

	filtered := func() *gorm.DB {
		q := db.Model(&models.PortfolioItem{})
		if service != "" {
			q = q.Where("service_type = ?", service)
		}

		return q
	}

	if err := filtered().Count(&out.Total).Error; err != nil {
		return out, fmt.Errorf("count portfolio: %w", err)
	}

	out.Data = []models.PortfolioItem{}

	err := filtered().Order("featured DESC").Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out.Data).Error
	if err != nil {
		return out, fmt.Errorf("list portfolio: %w", err)
	}

	out.Page = page
	out.PageSize = pageSize
	out.TotalPages = int((out.Total + int64(pageSize) - 1) / int64(pageSize))

	return out, nil
}

// Create stores a new item.
func Create(db *gorm.DB, item *models.PortfolioItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(item).Error //nolint:wrapcheck
}

// Count returns the number of stored items.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	if err := db.Model(&models.PortfolioItem{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count portfolio: %w", err)
	}

	return n, nil
}
