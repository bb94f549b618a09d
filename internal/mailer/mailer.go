package mailer

import (
	"context"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// Outcome is the tri-state result of a notification attempt. It is an
// observability signal, never a control-flow error: callers log and
// count it but must not let it influence their own result.
type Outcome string

const (
	// OutcomeSent means the relay accepted the notification.
	OutcomeSent Outcome = "sent"
	// OutcomeSkipped means delivery was not attempted because the relay
	// configuration is incomplete.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means delivery was attempted and the relay, network
	// or timeout rejected it.
	OutcomeFailed Outcome = "failed"
)

// Notifier delivers a best-effort notification for a stored message.
type Notifier interface {
	Notify(ctx context.Context, message models.ContactMessage) Outcome
}
