package responses

import "clinic-service/internal/app/models"

type AppointmentList struct {
	Appointments []models.Appointment `json:"appointments"`
}

type AppointmentBooked struct {
	AppointmentID string `json:"appointmentId"`
}
