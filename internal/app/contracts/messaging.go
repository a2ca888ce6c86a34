package contracts

import (
	"clinic-service/internal/app/models"
	"context"
)

// EventPublisher fans appointment lifecycle changes out to the
// notification queue. Publishing is best-effort; a failure is logged
// by the caller and never fails the request.
type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event string, appointment *models.Appointment) error
}
