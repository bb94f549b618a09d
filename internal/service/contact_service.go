package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mvaldes-dev/portfolio-api/internal/dto"
	"github.com/mvaldes-dev/portfolio-api/internal/mailer"
	"github.com/mvaldes-dev/portfolio-api/internal/models"
	"github.com/mvaldes-dev/portfolio-api/internal/observability"
	"github.com/mvaldes-dev/portfolio-api/internal/repository"
)

// SubmitConfirmation is the human-readable acknowledgement returned on
// a successful submission.
const SubmitConfirmation = "Message sent successfully! I'll get back to you soon."

const listCacheKey = "contact:messages"

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactSubmitResponse, error)
	ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error)
}

type contactService struct {
	repo         repository.ContactRepository
	cache        *redis.Client
	validator    *validator.Validate
	notifier     mailer.Notifier
	logger       zerolog.Logger
	listTTL      time.Duration
	storeTimeout time.Duration
	tracer       trace.Tracer
}

// NewContactService constructs a contact submission service. The cache
// client may be nil, which disables listing cache entirely.
func NewContactService(repo repository.ContactRepository, cache *redis.Client, validate *validator.Validate, notifier mailer.Notifier, listTTL time.Duration, logger zerolog.Logger) ContactService {
	if listTTL <= 0 {
		listTTL = time.Minute
	}
	return &contactService{
		repo:         repo,
		cache:        cache,
		validator:    validate,
		notifier:     notifier,
		logger:       logger.With().Str("component", "contact_service").Logger(),
		listTTL:      listTTL,
		storeTimeout: 5 * time.Second,
		tracer:       otel.Tracer("github.com/mvaldes-dev/portfolio-api/internal/service/contact"),
	}
}

// Submit validates the payload, stores it durably, and answers the
// caller before notification delivery is known. The notification runs
// on its own goroutine with a detached context; its outcome is logged
// and counted, never reflected in the returned response.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactSubmitResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactSubmissions().WithLabelValues("rejected").Inc()
		return dto.ContactSubmitResponse{}, err
	}

	message := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Status:    models.MessageStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	span.SetAttributes(attribute.String("contact.message_id", message.ID))

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.repo.Create(storeCtx, &message); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		s.logger.Error().Err(err).Msg("failed to persist contact message")
		observability.ContactSubmissions().WithLabelValues("persist_error").Inc()
		return dto.ContactSubmitResponse{}, &PersistenceError{Op: "create contact message", Err: err}
	}

	s.invalidateListCache(ctx)

	go s.dispatchNotification(message)

	observability.ContactSubmissions().WithLabelValues("accepted").Inc()
	s.logger.Info().
		Str("message_id", message.ID).
		Str("email", maskEmail(message.Email)).
		Msg("contact message stored")
	span.SetStatus(codes.Ok, "stored")

	return dto.ContactSubmitResponse{
		Success: true,
		Message: SubmitConfirmation,
		ID:      message.ID,
	}, nil
}

// ListMessages returns every stored message, newest first.
func (s *contactService) ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.list")
	defer span.End()

	if items, ok := s.cachedList(ctx); ok {
		return items, nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	messages, err := s.repo.ListAll(storeCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing failed")
		s.logger.Error().Err(err).Msg("failed to list contact messages")
		return nil, &PersistenceError{Op: "list contact messages", Err: err}
	}

	items := dto.NewContactMessageResponseSlice(messages)
	s.storeListCache(ctx, items)
	return items, nil
}

func (s *contactService) validate(req dto.ContactRequest) error {
	var violations []FieldViolation
	if err := s.validator.Struct(req); err != nil {
		violations = validationError(err).Violations
	}
	if req.Email != "" && !hasViolation(violations, "email") && !hasDottedDomain(req.Email) {
		violations = append(violations, FieldViolation{Field: "email", Reason: "must be a valid email address"})
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// dispatchNotification runs detached from the request so the caller's
// response is never delayed or altered by delivery.
func (s *contactService) dispatchNotification(message models.ContactMessage) {
	outcome := s.notifier.Notify(context.Background(), message)
	observability.NotificationDeliveries().WithLabelValues(string(outcome)).Inc()

	event := s.logger.Info()
	if outcome == mailer.OutcomeFailed {
		event = s.logger.Warn()
	}
	event.
		Str("message_id", message.ID).
		Str("outcome", string(outcome)).
		Msg("notification attempt finished")
}

func (s *contactService) cachedList(ctx context.Context) ([]dto.ContactMessageResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []dto.ContactMessageResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *contactService) storeListCache(ctx context.Context, items []dto.ContactMessageResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listCacheKey, raw, s.listTTL).Err(); err != nil {
		s.logger.Debug().Err(err).Msg("failed to cache contact listing")
	}
}

func (s *contactService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Debug().Err(err).Msg("failed to invalidate contact listing cache")
	}
}

func hasViolation(violations []FieldViolation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func maskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 2 {
		local = local[:1] + "***"
	} else {
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + parts[1]
}
