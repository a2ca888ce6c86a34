package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingDateKeyKey       = "date_key"
	LoggingTimeLabelKey     = "time_label"
)
