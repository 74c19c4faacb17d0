// Package pages serves the services and portfolio pages.
package pages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/portfolio"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/navigation"
)

const pageSize = 12

// Service is the static pages handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers /services and /portfolio.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(catalog.RouteServices, s.Services)
	router.Get(catalog.RoutePortfolio, s.Portfolio)

	return nil
}

// Services renders the service catalog.
func (s *Service) Services(c *fiber.Ctx) error {
	nav := navigation.NewContext("Services", catalog.RouteServices).
		AddBreadcrumb("Home", catalog.RouteHome, false).
		AddBreadcrumb("Services", catalog.RouteServices, true)

	return c.Render("services", s.deps.View(c, nav, nil), handler.BaseLayout)
}

// Portfolio renders one page of the portfolio, filtered by ?service=.
func (s *Service) Portfolio(c *fiber.Ctx) error {
	service := models.ServiceType(c.Query("service"))
	if _, ok := catalog.ServiceByID(service); !ok {
		service = ""
	}

	page, err := portfolio.List(s.deps.DB, service, c.QueryInt("page", 1), pageSize)
	if err != nil {
		return err //nolint:wrapcheck
	}

	nav := navigation.NewContext("Portfolio", catalog.RoutePortfolio).
		AddBreadcrumb("Home", catalog.RouteHome, false).
		AddBreadcrumb("Portfolio", catalog.RoutePortfolio, true)

	return c.Render("portfolio", s.deps.View(c, nav, fiber.Map{
		"Page":          page,
		"ActiveService": service,
		"HasPrev":       page.Page > 1,
		"HasNext":       page.Page < page.TotalPages,
	}), handler.BaseLayout)
}
