package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
	CONTEXT_PATIENT_ID_KEY ContextKey = "patientID"
	CONTEXT_ADMIN_KEY      ContextKey = "adminIdentity"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

const (
	// Slot generation window shared by the calculator and its tests.
	SlotHorizonDays   = 7
	SlotOpeningHour   = 10
	SlotClosingHour   = 21
	SlotStepMinutes   = 30
	SlotDateKeyFormat = "%d_%d_%d"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusPaid      = "paid"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusDeleted   = "deleted"
	AppointmentStatusCompleted = "completed"
)

const (
	RedisKeyDoctorDirectory   = "doctors:directory"
	RedisKeyBookedSlotsFormat = "doctors:%s:booked-slots"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentDeleted   = "appointment.deleted"
	EventAppointmentPaid      = "appointment.paid"
)
