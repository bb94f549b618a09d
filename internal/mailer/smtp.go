package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// Config carries the relay settings consumed by the SMTP notifier.
// Host, Username, Password and FromEmail are all required for delivery
// to be attempted; any missing value downgrades Notify to a skip.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier composes an HTML notification for the operator mailbox
// and delivers it through an external SMTP relay.
type SMTPNotifier struct {
	cfg      Config
	logger   zerolog.Logger
	sanitize *bluemonday.Policy
	send     sendFunc
}

// NewSMTPNotifier constructs a notifier. An incomplete Config is valid;
// the notifier then reports skipped outcomes instead of delivering.
func NewSMTPNotifier(cfg Config, logger zerolog.Logger) *SMTPNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = "Portfolio Contact"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMTPNotifier{
		cfg:      cfg,
		logger:   logger.With().Str("component", "mailer").Logger(),
		sanitize: bluemonday.StrictPolicy(),
		send:     smtp.SendMail,
	}
}

func (n *SMTPNotifier) configured() bool {
	return n.cfg.Host != "" && n.cfg.Username != "" && n.cfg.Password != "" && n.cfg.FromEmail != ""
}

// Notify attempts delivery and reports the outcome. It never returns an
// error: incomplete configuration yields a skip, a relay or timeout
// failure yields a failure, both logged here.
func (n *SMTPNotifier) Notify(ctx context.Context, message models.ContactMessage) Outcome {
	if !n.configured() {
		n.logger.Warn().Str("message_id", message.ID).Msg("mail configuration incomplete, skipping notification")
		return OutcomeSkipped
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	raw := n.buildMessage(message)

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.send(addr, auth, n.cfg.FromEmail, []string{n.cfg.FromEmail}, raw)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			n.logger.Error().Err(err).Str("message_id", message.ID).Msg("failed to send notification email")
			return OutcomeFailed
		}
	case <-ctx.Done():
		n.logger.Error().Err(ctx.Err()).Str("message_id", message.ID).Msg("notification email timed out")
		return OutcomeFailed
	}

	n.logger.Info().Str("message_id", message.ID).Msg("notification email sent")
	return OutcomeSent
}

func (n *SMTPNotifier) buildMessage(message models.ContactMessage) []byte {
	name := n.sanitize.Sanitize(message.Name)
	headers := []string{
		fmt.Sprintf("From: %s <%s>", n.cfg.FromName, n.cfg.FromEmail),
		fmt.Sprintf("To: %s", n.cfg.FromEmail),
		fmt.Sprintf("Reply-To: %s", message.Email),
		fmt.Sprintf("Subject: New Contact Form Submission from %s", name),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + n.buildBody(message))
}

func (n *SMTPNotifier) buildBody(message models.ContactMessage) string {
	name := n.sanitize.Sanitize(message.Name)
	email := n.sanitize.Sanitize(message.Email)
	body := n.sanitize.Sanitize(message.Message)
	receivedAt := message.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC")

	var b strings.Builder
	b.WriteString("<html><body style=\"font-family: Arial, sans-serif; line-height: 1.6; color: #333;\">")
	b.WriteString("<div style=\"max-width: 600px; margin: 0 auto; padding: 20px;\">")
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>", email, email)
	fmt.Fprintf(&b, "<div style=\"background-color: #f9f9f9; padding: 15px;\"><p><strong>Message:</strong></p><p style=\"white-space: pre-wrap;\">%s</p></div>", body)
	b.WriteString("<p style=\"color: #777; font-size: 12px;\">This message was sent from your portfolio website contact form.")
	fmt.Fprintf(&b, "<br>Received at: %s</p>", receivedAt)
	b.WriteString("</div></body></html>")
	return b.String()
}
