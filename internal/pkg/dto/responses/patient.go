package responses

import "clinic-service/internal/app/models"

type PatientProfile struct {
	Patient models.Patient `json:"userData"`
}
