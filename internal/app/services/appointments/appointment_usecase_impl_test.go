package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	f.doctors[doctor.ID] = doctor
	return doctor.ID, nil
}

func (f *fakeDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.Email == email {
			return doctor, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return doctor, nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	result := []models.Doctor{}
	for _, doctor := range f.doctors {
		result = append(result, *doctor)
	}
	return result, nil
}

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	delete(f.doctors, doctorID)
	return nil
}

func (f *fakeDoctorRepository) SetAvailability(ctx context.Context, doctorID string, available bool) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	doctor.Available = available
	return doctor, nil
}

func (f *fakeDoctorRepository) ReserveSlot(ctx context.Context, doctorID, dateKey, timeLabel string) error {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return exceptions.ErrDoctorNotFound(nil)
	}
	if !doctor.Available {
		return exceptions.ErrDoctorNotAvailable(nil)
	}
	for _, taken := range doctor.BookedSlots[dateKey] {
		if taken == timeLabel {
			return exceptions.ErrSlotNotAvailable(nil)
		}
	}
	if doctor.BookedSlots == nil {
		doctor.BookedSlots = map[string][]string{}
	}
	doctor.BookedSlots[dateKey] = append(doctor.BookedSlots[dateKey], timeLabel)
	return nil
}

func (f *fakeDoctorRepository) ReleaseSlot(ctx context.Context, doctorID, dateKey, timeLabel string) error {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil
	}
	remaining := []string{}
	for _, taken := range doctor.BookedSlots[dateKey] {
		if taken != timeLabel {
			remaining = append(remaining, taken)
		}
	}
	if len(remaining) == 0 {
		delete(doctor.BookedSlots, dateKey)
		return nil
	}
	doctor.BookedSlots[dateKey] = remaining
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	f.patients[patient.ID] = patient
	return patient.ID, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, patient := range f.patients {
		if patient.Email == email {
			return patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func (f *fakePatientRepository) UpdateFields(ctx context.Context, patientID string, updateData map[string]interface{}) (*models.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	nextID       int
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	f.nextID++
	stored := *appointment
	stored.ID = fmt.Sprintf("appt-%d", f.nextID)
	f.appointments[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByIDAndPatient(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok || appointment.PatientID != patientID {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	result := []models.Appointment{}
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	result := []models.Appointment{}
	for _, appointment := range f.appointments {
		result = append(result, *appointment)
	}
	return result, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string, payment bool) error {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	appointment.Status = status
	appointment.Payment = payment
	return nil
}

func (f *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	delete(f.appointments, appointmentID)
	return nil
}

type fakeRedisRepository struct {
	store map[string]string
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

type fakeEventPublisher struct {
	events []string
}

func (f *fakeEventPublisher) PublishAppointmentEvent(ctx context.Context, event string, appointment *models.Appointment) error {
	f.events = append(f.events, event)
	return nil
}

type usecaseFixture struct {
	usecase         contracts.AppointmentUsecase
	doctorRepo      *fakeDoctorRepository
	patientRepo     *fakePatientRepository
	appointmentRepo *fakeAppointmentRepository
	publisher       *fakeEventPublisher
}

func newUsecaseFixture() *usecaseFixture {
	doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {
			ID:          "doc-1",
			Name:        "Dr. Richard James",
			Email:       "richard@clinic.test",
			Fee:         50,
			Available:   true,
			BookedSlots: map[string][]string{},
		},
	}}
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		"pat-1": {ID: "pat-1", Name: "Alice", Email: "alice@example.com"},
		"pat-2": {ID: "pat-2", Name: "Bob", Email: "bob@example.com"},
	}}
	appointmentRepo := &fakeAppointmentRepository{appointments: map[string]*models.Appointment{}}
	publisher := &fakeEventPublisher{}

	usecase := NewAppointmentUsecase(
		appointmentRepo,
		doctorRepo,
		patientRepo,
		&fakeRedisRepository{store: map[string]string{}},
		publisher,
		zap.NewNop(),
	)
	return &usecaseFixture{
		usecase:         usecase,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
	}
}

func bookRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID:  "doc-1",
		DateKey:   "20_6_2026",
		TimeLabel: "10:30 am",
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("books a free slot and snapshots both parties", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)
		require.NotEmpty(t, response.AppointmentID)

		stored := f.appointmentRepo.appointments[response.AppointmentID]
		require.NotNil(t, stored)
		assert.Equal(t, "pat-1", stored.PatientID)
		assert.Equal(t, "doc-1", stored.DoctorID)
		assert.Equal(t, constvars.AppointmentStatusPending, stored.Status)
		assert.Equal(t, 50, stored.Amount)
		assert.False(t, stored.Payment)
		assert.Equal(t, "Dr. Richard James", stored.DoctorData.Name)
		assert.Equal(t, "Alice", stored.PatientData.Name)

		assert.Equal(t, []string{"10:30 am"}, f.doctorRepo.doctors["doc-1"].BookedSlots["20_6_2026"])
		assert.Equal(t, []string{constvars.EventAppointmentBooked}, f.publisher.events)
	})

	t.Run("rejects a taken slot without creating a second appointment", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		_, err = f.usecase.BookAppointment(ctx, "pat-2", bookRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
		assert.Len(t, f.appointmentRepo.appointments, 1)
		assert.Len(t, f.doctorRepo.doctors["doc-1"].BookedSlots["20_6_2026"], 1)
	})

	t.Run("rejects an unavailable doctor", func(t *testing.T) {
		f := newUsecaseFixture()
		f.doctorRepo.doctors["doc-1"].Available = false

		_, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.StatusPreconditionFailed, statusCodeOf(t, err))
		assert.Empty(t, f.appointmentRepo.appointments)
	})

	t.Run("rejects an unknown doctor", func(t *testing.T) {
		f := newUsecaseFixture()
		request := bookRequest()
		request.DoctorID = "doc-404"

		_, err := f.usecase.BookAppointment(ctx, "pat-1", request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("rejects malformed date keys and time labels", func(t *testing.T) {
		f := newUsecaseFixture()

		request := bookRequest()
		request.DateKey = "2026-06-20"
		_, err := f.usecase.BookAppointment(ctx, "pat-1", request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))

		request = bookRequest()
		request.TimeLabel = "22:30"
		_, err = f.usecase.BookAppointment(ctx, "pat-1", request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("rolls the slot back when the patient lookup fails", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.BookAppointment(ctx, "pat-404", bookRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		assert.Empty(t, f.doctorRepo.doctors["doc-1"].BookedSlots)
		assert.Empty(t, f.appointmentRepo.appointments)
	})

	t.Run("snapshots are immune to later doctor edits", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		f.doctorRepo.doctors["doc-1"].Fee = 90
		f.doctorRepo.doctors["doc-1"].Name = "Dr. Renamed"

		stored := f.appointmentRepo.appointments[response.AppointmentID]
		assert.Equal(t, 50, stored.Amount)
		assert.Equal(t, 50, stored.DoctorData.Fee)
		assert.Equal(t, "Dr. Richard James", stored.DoctorData.Name)
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("releases the slot and drops the emptied date key", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)

		_, dateKeyPresent := f.doctorRepo.doctors["doc-1"].BookedSlots["20_6_2026"]
		assert.False(t, dateKeyPresent)

		stored := f.appointmentRepo.appointments[response.AppointmentID]
		require.NotNil(t, stored, "cancel keeps the record")
		assert.Equal(t, constvars.AppointmentStatusCancelled, stored.Status)
		assert.Contains(t, f.publisher.events, constvars.EventAppointmentCancelled)
	})

	t.Run("keeps sibling labels when releasing one of several", func(t *testing.T) {
		f := newUsecaseFixture()

		first, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		second := bookRequest()
		second.TimeLabel = "11:00 am"
		_, err = f.usecase.BookAppointment(ctx, "pat-2", second)
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: first.AppointmentID})
		require.NoError(t, err)

		assert.Equal(t, []string{"11:00 am"}, f.doctorRepo.doctors["doc-1"].BookedSlots["20_6_2026"])
	})

	t.Run("does not require ownership", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		// pat-2 cancelling pat-1's appointment succeeds; the request
		// carries no caller identity at this layer.
		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)
	})

	t.Run("rejects an unknown appointment", func(t *testing.T) {
		f := newUsecaseFixture()

		err := f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: "appt-404"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete removes the record and frees the slot", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.DeleteAppointment(ctx, "pat-1", &requests.DeleteAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)

		assert.Empty(t, f.appointmentRepo.appointments)
		assert.Empty(t, f.doctorRepo.doctors["doc-1"].BookedSlots)
		assert.Contains(t, f.publisher.events, constvars.EventAppointmentDeleted)
	})

	t.Run("non-owner delete looks like a missing appointment", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.DeleteAppointment(ctx, "pat-2", &requests.DeleteAppointment{AppointmentID: response.AppointmentID})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		assert.Len(t, f.appointmentRepo.appointments, 1)
		assert.Len(t, f.doctorRepo.doctors["doc-1"].BookedSlots["20_6_2026"], 1)
	})
}

func TestPayAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the appointment paid", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.PayAppointment(ctx, &requests.PayAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)

		stored := f.appointmentRepo.appointments[response.AppointmentID]
		assert.Equal(t, constvars.AppointmentStatusPaid, stored.Status)
		assert.True(t, stored.Payment)
		assert.Contains(t, f.publisher.events, constvars.EventAppointmentPaid)
	})

	t.Run("pays even a cancelled appointment", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)

		err = f.usecase.PayAppointment(ctx, &requests.PayAppointment{AppointmentID: response.AppointmentID})
		require.NoError(t, err)

		stored := f.appointmentRepo.appointments[response.AppointmentID]
		assert.Equal(t, constvars.AppointmentStatusPaid, stored.Status)
		assert.True(t, stored.Payment)
	})
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()

	t.Run("hides cancelled entries from the patient view", func(t *testing.T) {
		f := newUsecaseFixture()

		first, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		second := bookRequest()
		second.TimeLabel = "11:00 am"
		_, err = f.usecase.BookAppointment(ctx, "pat-1", second)
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: first.AppointmentID})
		require.NoError(t, err)

		response, err := f.usecase.ListAppointments(ctx, "pat-1")
		require.NoError(t, err)
		require.Len(t, response.Appointments, 1)
		assert.Equal(t, "11:00 am", response.Appointments[0].TimeLabel)
	})

	t.Run("admin listing includes everything", func(t *testing.T) {
		f := newUsecaseFixture()

		first, err := f.usecase.BookAppointment(ctx, "pat-1", bookRequest())
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, &requests.CancelAppointment{AppointmentID: first.AppointmentID})
		require.NoError(t, err)

		response, err := f.usecase.ListAllAppointments(ctx)
		require.NoError(t, err)
		assert.Len(t, response.Appointments, 1)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Appointments[0].Status)
	})
}
