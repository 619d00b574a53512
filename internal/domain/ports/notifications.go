package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=notifications.go -destination=mocks/notifications_mock.go -package=mocks

// Mailer envia emails transacionais
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetLink string, expiresAt time.Time) error
}

// ApplicationStatusChanged é publicado quando o status de uma candidatura muda
type ApplicationStatusChanged struct {
	ApplicationID   string    `json:"applicationId"`
	JobID           string    `json:"jobId"`
	ApplicantUserID string    `json:"applicantUserId"`
	PreviousStatus  string    `json:"previousStatus"`
	Status          string    `json:"status"`
	ChangedAt       time.Time `json:"changedAt"`
}

// ApplicationNotifier entrega eventos de candidatura aos clientes conectados.
// A entrega é best-effort.
type ApplicationNotifier interface {
	NotifyStatusChanged(ctx context.Context, event ApplicationStatusChanged)
}
