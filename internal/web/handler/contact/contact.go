// Package contact serves the contact page and stores contact messages.
package contact

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/inquiry"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/validation"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/navigation"
)

// TemplateName is the name of the contact page template.
const TemplateName = "contact"

// Service is the contact handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers GET and POST /contact.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(catalog.RouteContact, s.Get)
	router.Post(catalog.RouteContact, s.Post)

	return nil
}

// Get renders the empty contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, &models.ContactForm{}, nil, "")
}

// Post validates and stores a contact message.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(models.ContactForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := s.deps.Validator.Validate(form); len(errs) > 0 {
		c.Status(fiber.StatusUnprocessableEntity)
		return s.render(c, form, errs, "")
	}

	msg, err := inquiry.SaveContact(s.deps.DB, form)
	if err != nil {
		log.Error().Err(err).Msg("failed to save contact message")
		return fiber.ErrInternalServerError
	}

	log.Info().Str("message_id", msg.ID).Msg("contact message received")

	return s.render(c, &models.ContactForm{}, nil, "Thank you, we will get back to you shortly.")
}

func (s *Service) render(c *fiber.Ctx, form *models.ContactForm, errs []validation.FieldError, success string) error {
	invalid := make(map[string]bool, len(errs))
	for _, e := range errs {
		invalid[e.FailedField] = true
	}

	nav := navigation.NewContext("Contact", catalog.RouteContact).
		AddBreadcrumb("Home", catalog.RouteHome, false).
		AddBreadcrumb("Contact", catalog.RouteContact, true)

	return c.Render(TemplateName, s.deps.View(c, nav, fiber.Map{
		"Form":         form,
		"Invalid":      invalid,
		"Success":      success,
		"BudgetRanges": catalog.BudgetRanges,
		"Timelines":    catalog.TimelineOptions,
		"TimeSlots":    catalog.AppointmentTimeSlots,
	}), handler.BaseLayout)
}
