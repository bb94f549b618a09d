package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mvaldes-dev/portfolio-api/internal/config"
	"github.com/mvaldes-dev/portfolio-api/internal/dto"
	"github.com/mvaldes-dev/portfolio-api/internal/handler"
	"github.com/mvaldes-dev/portfolio-api/internal/mailer"
	"github.com/mvaldes-dev/portfolio-api/internal/middleware"
	"github.com/mvaldes-dev/portfolio-api/internal/models"
	"github.com/mvaldes-dev/portfolio-api/internal/repository"
	"github.com/mvaldes-dev/portfolio-api/internal/router"
	"github.com/mvaldes-dev/portfolio-api/internal/service"
)

// unreachableRelay simulates a mail relay that always rejects delivery.
type unreachableRelay struct{}

func (unreachableRelay) Notify(_ context.Context, _ models.ContactMessage) mailer.Outcome {
	return mailer.OutcomeFailed
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}, &models.StatusCheck{}))
	t.Cleanup(func() {
		require.NoError(t, db.Exec("DELETE FROM contact_messages").Error)
		require.NoError(t, db.Exec("DELETE FROM status_checks").Error)
	})

	logger := zerolog.New(io.Discard)
	validate := validator.New(validator.WithRequiredStructEnabled())

	contactRepo := repository.NewContactRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	contactService := service.NewContactService(contactRepo, nil, validate, unreachableRelay{}, time.Minute, logger)
	statusService := service.NewStatusService(statusRepo, validate, logger)

	app := fiber.New()
	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, config.Config{AppName: "Portfolio API Test", AppEnv: "test"}, router.Dependencies{
		ContactHandler: handler.NewContactHandler(contactService, logger),
		StatusHandler:  handler.NewStatusHandler(statusService, logger),
	})

	return app
}

func submitContact(t *testing.T, app *fiber.App, payload dto.ContactRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func listContacts(t *testing.T, app *fiber.App) []dto.ContactMessageResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []dto.ContactMessageResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return items
}

func TestContactSubmissionRoundTrip(t *testing.T) {
	app := setupApp(t)

	require.Empty(t, listContacts(t, app), "empty store should list as an empty array")

	resp := submitContact(t, app, dto.ContactRequest{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Message: "This is a test message from automated testing.",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ContactSubmitResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.ID)

	items := listContacts(t, app)
	require.Len(t, items, 1)
	require.Equal(t, body.ID, items[0].ID)
	require.Equal(t, "John Doe", items[0].Name)
	require.Equal(t, "john.doe@example.com", items[0].Email)
	require.Equal(t, "This is a test message from automated testing.", items[0].Message)
	require.Equal(t, models.MessageStatusNew, items[0].Status)
}

func TestContactSubmissionRejectsInvalidPayload(t *testing.T) {
	app := setupApp(t)

	resp := submitContact(t, app, dto.ContactRequest{Name: "J", Email: "invalid-email", Message: "Short"})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Success)
	require.Len(t, body.Errors, 3)

	require.Empty(t, listContacts(t, app), "rejected submissions must not be persisted")
}

func TestContactListingNewestFirst(t *testing.T) {
	app := setupApp(t)

	var ids []string
	for _, text := range []string{
		"Message A, long enough to pass validation.",
		"Message B, long enough to pass validation.",
		"Message C, long enough to pass validation.",
	} {
		resp := submitContact(t, app, dto.ContactRequest{Name: "John Doe", Email: "john.doe@example.com", Message: text})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.ContactSubmitResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		ids = append(ids, body.ID)

		time.Sleep(5 * time.Millisecond)
	}

	items := listContacts(t, app)
	require.Len(t, items, 3)
	require.Equal(t, ids[2], items[0].ID)
	require.Equal(t, ids[1], items[1].ID)
	require.Equal(t, ids[0], items[2].ID)
}

func TestContactSubmissionSucceedsWhenRelayUnreachable(t *testing.T) {
	app := setupApp(t)

	resp := submitContact(t, app, dto.ContactRequest{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Message: "This is a test message from automated testing.",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ContactSubmitResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)

	items := listContacts(t, app)
	require.Len(t, items, 1)
	require.Equal(t, body.ID, items[0].ID)
}

func TestStatusCheckRoundTrip(t *testing.T) {
	app := setupApp(t)

	payload, err := json.Marshal(dto.StatusCheckRequest{ClientName: "uptime-bot"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.StatusCheckResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "uptime-bot", created.ClientName)

	listReq := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	listResp, err := app.Test(listReq)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var checks []dto.StatusCheckResponse
	defer listResp.Body.Close()
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&checks))
	require.Len(t, checks, 1)
	require.Equal(t, created.ID, checks[0].ID)
}

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body handler.HealthResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}
