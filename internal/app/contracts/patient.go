package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdateFields(ctx context.Context, patientID string, updateData map[string]interface{}) (*models.Patient, error)
}

type PatientUsecase interface {
	GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, patientID string, request *requests.UpdateProfile) (*responses.PatientProfile, error)
	CheckExists(ctx context.Context, email string) (*responses.CheckExists, error)
}
