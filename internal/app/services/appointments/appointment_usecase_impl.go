package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"
)

var (
	dateKeyPattern   = regexp.MustCompile(constvars.RegexDateKey)
	timeLabelPattern = regexp.MustCompile(constvars.RegexTimeLabel)
)

type AppointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	RedisRepository       contracts.RedisRepository
	EventPublisher        contracts.EventPublisher
	Logger                *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &AppointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		PatientRepository:     patientRepository,
		RedisRepository:       redisRepository,
		EventPublisher:        eventPublisher,
		Logger:                logger,
	}
}

// BookAppointment reserves the slot first through the conditional
// update, so two concurrent requests for the same slot cannot both
// succeed. Everything after the reservation rolls the slot back on
// failure.
func (uc *AppointmentUsecase) BookAppointment(ctx context.Context, patientID string, request *requests.BookAppointment) (*responses.AppointmentBooked, error) {
	if !dateKeyPattern.MatchString(request.DateKey) {
		return nil, exceptions.ErrInvalidFormat(nil, "slotDate")
	}
	if !timeLabelPattern.MatchString(request.TimeLabel) {
		return nil, exceptions.ErrInvalidFormat(nil, "slotTime")
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if err := uc.DoctorRepository.ReserveSlot(ctx, request.DoctorID, request.DateKey, request.TimeLabel); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err == nil && patient == nil {
		err = exceptions.ErrUserNotFound(nil)
	}
	if err != nil {
		uc.releaseSlot(ctx, request.DoctorID, request.DateKey, request.TimeLabel)
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:   patientID,
		DoctorID:    request.DoctorID,
		DateKey:     request.DateKey,
		TimeLabel:   request.TimeLabel,
		PatientData: patient.Snapshot(),
		DoctorData:  doctor.Snapshot(),
		Amount:      doctor.Fee,
		Status:      constvars.AppointmentStatusPending,
		CreatedAt:   time.Now(),
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.releaseSlot(ctx, request.DoctorID, request.DateKey, request.TimeLabel)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.publishEvent(ctx, constvars.EventAppointmentBooked, appointment)
	uc.invalidateSlotCache(ctx, request.DoctorID)

	uc.Logger.Info("appointment booked",
		zap.String("appointmentId", appointmentID),
		zap.String("doctorId", request.DoctorID),
		zap.String("slotDate", request.DateKey),
		zap.String("slotTime", request.TimeLabel),
	)
	return &responses.AppointmentBooked{AppointmentID: appointmentID}, nil
}

// CancelAppointment releases the slot and marks the record cancelled.
// Any authenticated patient may cancel any appointment by ID.
func (uc *AppointmentUsecase) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.DoctorRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.DateKey, appointment.TimeLabel); err != nil {
		return err
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, constvars.AppointmentStatusCancelled, appointment.Payment); err != nil {
		return err
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	uc.publishEvent(ctx, constvars.EventAppointmentCancelled, appointment)
	uc.invalidateSlotCache(ctx, appointment.DoctorID)
	return nil
}

// DeleteAppointment hard-removes the record and releases the slot. The
// lookup is scoped to the caller, so someone else's appointment is
// indistinguishable from a missing one.
func (uc *AppointmentUsecase) DeleteAppointment(ctx context.Context, patientID string, request *requests.DeleteAppointment) error {
	appointment, err := uc.AppointmentRepository.FindByIDAndPatient(ctx, request.AppointmentID, patientID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotOwned(nil)
	}

	if err := uc.DoctorRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.DateKey, appointment.TimeLabel); err != nil {
		return err
	}

	if err := uc.AppointmentRepository.DeleteByID(ctx, appointment.ID); err != nil {
		return err
	}

	appointment.Status = constvars.AppointmentStatusDeleted
	uc.publishEvent(ctx, constvars.EventAppointmentDeleted, appointment)
	uc.invalidateSlotCache(ctx, appointment.DoctorID)
	return nil
}

// PayAppointment flips the record to paid unconditionally, matching
// the checkout flow: even a cancelled appointment can be marked paid.
func (uc *AppointmentUsecase) PayAppointment(ctx context.Context, request *requests.PayAppointment) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, constvars.AppointmentStatusPaid, true); err != nil {
		return err
	}

	appointment.Status = constvars.AppointmentStatusPaid
	appointment.Payment = true
	uc.publishEvent(ctx, constvars.EventAppointmentPaid, appointment)
	return nil
}

// ListAppointments returns the caller's ledger, newest first, with
// cancelled entries filtered out of the view but kept in storage.
func (uc *AppointmentUsecase) ListAppointments(ctx context.Context, patientID string) (*responses.AppointmentList, error) {
	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	visible := []models.Appointment{}
	for _, appointment := range appointments {
		if appointment.Status == constvars.AppointmentStatusCancelled {
			continue
		}
		visible = append(visible, appointment)
	}

	return &responses.AppointmentList{Appointments: visible}, nil
}

func (uc *AppointmentUsecase) ListAllAppointments(ctx context.Context) (*responses.AppointmentList, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.AppointmentList{Appointments: appointments}, nil
}

func (uc *AppointmentUsecase) releaseSlot(ctx context.Context, doctorID, dateKey, timeLabel string) {
	if err := uc.DoctorRepository.ReleaseSlot(ctx, doctorID, dateKey, timeLabel); err != nil {
		uc.Logger.Error("slot rollback failed",
			zap.String("doctorId", doctorID),
			zap.String("slotDate", dateKey),
			zap.String("slotTime", timeLabel),
			zap.Error(err),
		)
	}
}

func (uc *AppointmentUsecase) publishEvent(ctx context.Context, event string, appointment *models.Appointment) {
	if err := uc.EventPublisher.PublishAppointmentEvent(ctx, event, appointment); err != nil {
		uc.Logger.Warn("appointment event publish failed",
			zap.String("event", event),
			zap.String("appointmentId", appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *AppointmentUsecase) invalidateSlotCache(ctx context.Context, doctorID string) {
	key := fmt.Sprintf(constvars.RedisKeyBookedSlotsFormat, doctorID)
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Logger.Warn("booked slots cache invalidation failed", zap.String("doctorId", doctorID), zap.Error(err))
	}
}
