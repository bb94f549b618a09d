package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mvaldes-dev/portfolio-api/internal/dto"
	"github.com/mvaldes-dev/portfolio-api/internal/service"
	"github.com/mvaldes-dev/portfolio-api/internal/utils"
)

// ContactHandler handles contact form submissions and listing.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
	router.Get("", h.list)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Submit(c.UserContext(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendValidationError(c, validationErr.Violations)
		}
		h.logger.Error().Err(err).Msg("failed to process contact submission")
		return utils.SendError(c, fiber.StatusInternalServerError, "Failed to send message. Please try again.")
	}

	return c.JSON(response)
}

func (h *ContactHandler) list(c *fiber.Ctx) error {
	items, err := h.service.ListMessages(c.UserContext())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list contact messages")
		return utils.SendError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	return c.JSON(items)
}
