package responses

import "clinic-service/internal/app/models"

type DoctorAdded struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DoctorList struct {
	Doctors []models.Doctor `json:"doctors"`
}

type DoctorDeleted struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DoctorAvailability struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Available bool   `json:"available"`
}

type BookedSlots struct {
	BookedSlots map[string][]string `json:"bookedSlots"`
}
