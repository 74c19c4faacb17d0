// Package api serves the JSON API.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/inquiry"
	"github.com/designspec/designspec-web/internal/db/controller/portfolio"
	"github.com/designspec/designspec-web/internal/db/controller/stats"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/handler/dashboard"
)

// Prefix is the route group of the API.
const Prefix = "/api"

// Status is the answer of GET /api/status.
type Status struct {
	App      string `json:"app"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// Service is the API handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the API routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Route(Prefix, func(r fiber.Router) {
		r.Get("/status", s.Status)
		r.Get("/services", s.Services)
		r.Get("/portfolio", s.Portfolio)
		r.Post("/contact", s.Contact)
		r.Post("/quotes", s.Quote)
		r.Post("/appointments", s.Appointment)
		r.Get("/dashboard/stats", s.DashboardStats)
	})

	return nil
}

// Status reports the identity provider state.
func (s *Service) Status(c *fiber.Ctx) error {
	return c.JSON(models.APIResponse{Data: Status{
		App:      catalog.AppName,
		Provider: s.deps.Resolver.Effective().Name(),
		Status:   s.deps.Resolver.Status().String(),
	}})
}

// Services lists the offered services.
func (s *Service) Services(c *fiber.Ctx) error {
	return c.JSON(models.APIResponse{Data: catalog.Services})
}

// Portfolio returns one page of portfolio items.
func (s *Service) Portfolio(c *fiber.Ctx) error {
	page, err := portfolio.List(s.deps.DB,
		models.ServiceType(c.Query("service")),
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", catalog.DefaultPageSize),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list portfolio")
		return internalError(c)
	}

	return c.JSON(page)
}

// Contact stores a contact message.
func (s *Service) Contact(c *fiber.Ctx) error {
	form := new(models.ContactForm)
	if ok, err := s.bind(c, form); !ok {
		return err
	}

	msg, err := inquiry.SaveContact(s.deps.DB, form)
	if err != nil {
		log.Error().Err(err).Msg("failed to save contact message")
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:    msg,
		Message: "Message received",
	})
}

// Quote stores a quote request.
func (s *Service) Quote(c *fiber.Ctx) error {
	form := new(models.QuoteRequestForm)
	if ok, err := s.bind(c, form); !ok {
		return err
	}

	quote, err := inquiry.RequestQuote(s.deps.DB, form)
	if err != nil {
		log.Error().Err(err).Msg("failed to store quote request")
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:    quote,
		Message: "Quote request received",
	})
}

// Appointment stores a consultation booking.
func (s *Service) Appointment(c *fiber.Ctx) error {
	form := new(models.AppointmentBookingForm)
	if ok, err := s.bind(c, form); !ok {
		return err
	}

	appt, err := inquiry.BookAppointment(s.deps.DB, form, s.deps.Now())
	if errors.Is(err, inquiry.ErrDateInPast) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.APIResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to store appointment")
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:    appt,
		Message: "Appointment booked",
	})
}

// DashboardStats returns the counters of the caller's dashboard.
func (s *Service) DashboardStats(c *fiber.Ctx) error {
	p := identity.PrincipalFrom(c)
	if p == nil {
		return identity.Unauthenticated(c)
	}

	st, err := stats.ForProfile(s.deps.DB, dashboard.ProfileOf(p), s.deps.Now())
	if err != nil {
		log.Error().Err(err).Str("profile_id", p.ProfileID).Msg("failed to load dashboard stats")
		return internalError(c)
	}

	return c.JSON(models.APIResponse{Data: st})
}

// bind parses and validates the body into form. When it returns false the
// error response has been written and err is what the handler returns.
func (s *Service) bind(c *fiber.Ctx, form any) (bool, error) {
	if err := c.BodyParser(form); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Error: "invalid request body",
			Code:  "BAD_REQUEST",
		})
	}

	if errs := s.deps.Validator.Validate(form); len(errs) > 0 {
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(models.APIResponse{
			Data:  errs,
			Error: "validation failed",
			Code:  "VALIDATION_ERROR",
		})
	}

	return true, nil
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
		Error: "internal server error",
		Code:  "INTERNAL",
	})
}
