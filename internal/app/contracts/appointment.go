package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByIDAndPatient(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string, payment bool) error
	DeleteByID(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patientID string, request *requests.BookAppointment) (*responses.AppointmentBooked, error)
	CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error
	DeleteAppointment(ctx context.Context, patientID string, request *requests.DeleteAppointment) error
	PayAppointment(ctx context.Context, request *requests.PayAppointment) error
	ListAppointments(ctx context.Context, patientID string) (*responses.AppointmentList, error)
	ListAllAppointments(ctx context.Context) (*responses.AppointmentList, error)
}
