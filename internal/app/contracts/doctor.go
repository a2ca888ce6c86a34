package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	DeleteByID(ctx context.Context, doctorID string) error
	SetAvailability(ctx context.Context, doctorID string, available bool) (*models.Doctor, error)

	// ReserveSlot appends timeLabel to the doctor's slot list for
	// dateKey in a single conditional update: it succeeds only when the
	// doctor exists, is available, and the label is not yet present.
	// The three failure modes are reported as distinct errors.
	ReserveSlot(ctx context.Context, doctorID, dateKey, timeLabel string) error

	// ReleaseSlot removes timeLabel from the doctor's slot list for
	// dateKey and drops the date key entirely once its list is empty.
	ReleaseSlot(ctx context.Context, doctorID, dateKey, timeLabel string) error
}

type DoctorUsecase interface {
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (*responses.DoctorAdded, error)
	ListDoctors(ctx context.Context) (*responses.DoctorList, error)
	DeleteDoctor(ctx context.Context, doctorID string) (*responses.DoctorDeleted, error)
	ChangeAvailability(ctx context.Context, request *requests.ChangeAvailability) (*responses.DoctorAvailability, error)
	GetAvailability(ctx context.Context, doctorID string) (*responses.DoctorAvailability, error)
	GetBookedSlots(ctx context.Context, doctorID string) (*responses.BookedSlots, error)
	GetOpenSlots(ctx context.Context, doctorID string) (*responses.OpenSlots, error)
}
