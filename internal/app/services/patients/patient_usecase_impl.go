package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type PatientUsecase struct {
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	Logger            *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &PatientUsecase{
		PatientRepository: patientRepository,
		Storage:           storage,
		Logger:            logger,
	}
}

func (uc *PatientUsecase) GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	return &responses.PatientProfile{Patient: *patient}, nil
}

// UpdateProfile writes only the fields the request carries; absent
// fields keep their stored values. An image upload without a configured
// backend is a server-side configuration error.
func (uc *PatientUsecase) UpdateProfile(ctx context.Context, patientID string, request *requests.UpdateProfile) (*responses.PatientProfile, error) {
	updateData := map[string]interface{}{}
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	if request.DOB != nil {
		updateData["dob"] = *request.DOB
	}
	if request.Gender != nil {
		updateData["gender"] = *request.Gender
	}
	if request.Address != nil {
		updateData["address"] = map[string]interface{}{
			"line1": request.Address.Line1,
			"line2": request.Address.Line2,
		}
	}

	if request.ImageFile != nil && request.ImageHeader != nil {
		if !uc.Storage.Configured() {
			return nil, exceptions.ErrStorageNotConfigured(nil)
		}
		imageURL, err := uc.Storage.UploadFile(ctx, request.ImageFile, request.ImageHeader)
		if err != nil {
			return nil, err
		}
		updateData["image"] = imageURL
	}

	if len(updateData) == 0 {
		return nil, exceptions.ErrNoFieldsToUpdate(nil)
	}

	patient, err := uc.PatientRepository.UpdateFields(ctx, patientID, updateData)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	return &responses.PatientProfile{Patient: *patient}, nil
}

func (uc *PatientUsecase) CheckExists(ctx context.Context, email string) (*responses.CheckExists, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, utils.SanitizeEmail(email))
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return &responses.CheckExists{Exists: false}, nil
	}

	return &responses.CheckExists{
		Exists: true,
		Patient: &responses.PatientIdentity{
			ID:    patient.ID,
			Name:  patient.Name,
			Email: patient.Email,
		},
	}, nil
}
