// Package handler holds what the page and API handlers share.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// BaseLayout wraps every page.
const BaseLayout = "layouts/base"

// ErrDepsNil is returned by Init when a required dependency is missing.
var ErrDepsNil = errors.New("router or handler dependencies are nil")

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Deps) error
}
