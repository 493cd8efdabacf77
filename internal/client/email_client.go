package client

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"jornada-registro-api/internal/domain"
	"jornada-registro-api/internal/metrics"
)

// EmailClient defines the interface for sending transactional emails
type EmailClient interface {
	// SendRegistrationConfirmation sends the welcome email after a successful
	// registration
	SendRegistrationConfirmation(ctx context.Context, participant *domain.Participant) error
}

// emailClient implements EmailClient on top of the Resend API
type emailClient struct {
	client  *resend.Client
	from    string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewEmailClient creates a new Resend email client
func NewEmailClient(apiKey, from string, logger *zap.Logger, m *metrics.Metrics) EmailClient {
	return &emailClient{
		client:  resend.NewClient(apiKey),
		from:    from,
		logger:  logger,
		metrics: m,
	}
}

// SendRegistrationConfirmation sends the welcome email. Email delivery is
// best-effort: failures are logged and never break the registration flow.
func (c *emailClient) SendRegistrationConfirmation(ctx context.Context, participant *domain.Participant) error {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{participant.Email},
		Subject: "Registro confirmado - Jornada de Ingeniería Industrial",
		Html: fmt.Sprintf(
			"<p>Hola %s,</p>"+
				"<p>Tu registro a la Jornada de Ingeniería Industrial quedó confirmado.</p>"+
				"<p>Categoría: %s</p>"+
				"<p>Recuerda registrar tu asistencia en cada conferencia para poder obtener tu constancia.</p>",
			participant.FullName(), participant.Categoria),
	}

	startTime := time.Now()
	_, err := c.client.Emails.SendWithContext(ctx, params)
	duration := time.Since(startTime)

	statusCode := 200
	if err != nil {
		statusCode = 0
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall("resend:/emails", "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to send registration confirmation email",
			zap.Error(err),
			zap.String("email", participant.Email),
			zap.Duration("duration", duration),
		)
		// Graceful degradation: log error but don't fail the main operation
		return nil
	}

	c.logger.Info("Registration confirmation email sent",
		zap.String("email", participant.Email),
		zap.Duration("duration", duration),
	)
	return nil
}

// NoOpEmailClient is a no-op implementation for when email is disabled
type NoOpEmailClient struct{}

func NewNoOpEmailClient() EmailClient {
	return &NoOpEmailClient{}
}

func (c *NoOpEmailClient) SendRegistrationConfirmation(ctx context.Context, participant *domain.Participant) error {
	return nil
}
