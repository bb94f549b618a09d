package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mvaldes-dev/portfolio-api/internal/dto"
	"github.com/mvaldes-dev/portfolio-api/internal/service"
	"github.com/mvaldes-dev/portfolio-api/internal/utils"
)

// StatusHandler handles liveness ping recording and listing.
type StatusHandler struct {
	service service.StatusService
	logger  zerolog.Logger
}

// NewStatusHandler constructs a status check handler.
func NewStatusHandler(service service.StatusService, logger zerolog.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger.With().Str("component", "status_handler").Logger(),
	}
}

// Register wires status check routes.
func (h *StatusHandler) Register(router fiber.Router) {
	router.Post("", h.record)
	router.Get("", h.list)
}

func (h *StatusHandler) record(c *fiber.Ctx) error {
	var payload dto.StatusCheckRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Record(c.UserContext(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendValidationError(c, validationErr.Violations)
		}
		h.logger.Error().Err(err).Msg("failed to record status check")
		return utils.SendError(c, fiber.StatusInternalServerError, "Failed to record status check")
	}

	return c.JSON(response)
}

func (h *StatusHandler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list status checks")
		return utils.SendError(c, fiber.StatusInternalServerError, "Failed to fetch status checks")
	}

	return c.JSON(items)
}
