package requests

type BookAppointment struct {
	DoctorID  string `json:"docId" validate:"required"`
	DateKey   string `json:"slotDate" validate:"required"`
	TimeLabel string `json:"slotTime" validate:"required"`
}

type CancelAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type DeleteAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type PayAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}
