package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mvaldes-dev/portfolio-api/internal/dto"
	"github.com/mvaldes-dev/portfolio-api/internal/models"
	"github.com/mvaldes-dev/portfolio-api/internal/repository"
)

// StatusService records and lists liveness pings.
type StatusService interface {
	Record(ctx context.Context, req dto.StatusCheckRequest) (dto.StatusCheckResponse, error)
	List(ctx context.Context) ([]dto.StatusCheckResponse, error)
}

type statusService struct {
	repo         repository.StatusRepository
	validator    *validator.Validate
	logger       zerolog.Logger
	storeTimeout time.Duration
}

// NewStatusService constructs the status check service.
func NewStatusService(repo repository.StatusRepository, validate *validator.Validate, logger zerolog.Logger) StatusService {
	return &statusService{
		repo:         repo,
		validator:    validate,
		logger:       logger.With().Str("component", "status_service").Logger(),
		storeTimeout: 5 * time.Second,
	}
}

func (s *statusService) Record(ctx context.Context, req dto.StatusCheckRequest) (dto.StatusCheckResponse, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	if err := s.validator.Struct(req); err != nil {
		return dto.StatusCheckResponse{}, validationError(err)
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.repo.Create(storeCtx, &check); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist status check")
		return dto.StatusCheckResponse{}, &PersistenceError{Op: "create status check", Err: err}
	}

	return dto.NewStatusCheckResponse(check), nil
}

func (s *statusService) List(ctx context.Context) ([]dto.StatusCheckResponse, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	checks, err := s.repo.ListAll(storeCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list status checks")
		return nil, &PersistenceError{Op: "list status checks", Err: err}
	}
	return dto.NewStatusCheckResponseSlice(checks), nil
}
