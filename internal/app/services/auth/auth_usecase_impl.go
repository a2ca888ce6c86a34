package auth

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type AuthUsecase struct {
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	Logger            *zap.Logger
}

func NewAuthUsecase(
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &AuthUsecase{
		PatientRepository: patientRepository,
		InternalConfig:    internalConfig,
		Logger:            logger,
	}
}

// LoginAdmin checks the request against the single configured staff
// identity. There is no admin collection to look up.
func (uc *AuthUsecase) LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	if request.Email != uc.InternalConfig.Admin.Email || request.Password != uc.InternalConfig.Admin.Password {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateAdminToken(uc.InternalConfig.Admin.Email, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return &responses.AdminLogin{Token: token}, nil
}

func (uc *AuthUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.PatientAuth, error) {
	email := utils.SanitizeEmail(request.Email)

	existing, err := uc.PatientRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExists(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		Name:      request.Name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	token, err := utils.GeneratePatientToken(patientID, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("patient registered", zap.String("patientId", patientID))
	return &responses.PatientAuth{
		Token: token,
		Patient: responses.PatientIdentity{
			ID:    patientID,
			Name:  patient.Name,
			Email: patient.Email,
		},
	}, nil
}

// LoginPatient keeps the lookup and password failures distinct: an
// unknown email is a 404, a wrong password a 401.
func (uc *AuthUsecase) LoginPatient(ctx context.Context, request *requests.LoginPatient) (*responses.PatientAuth, error) {
	email := utils.SanitizeEmail(request.Email)

	patient, err := uc.PatientRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if !utils.CheckPasswordHash(request.Password, patient.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GeneratePatientToken(patient.ID, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return &responses.PatientAuth{
		Token: token,
		Patient: responses.PatientIdentity{
			ID:    patient.ID,
			Name:  patient.Name,
			Email: patient.Email,
		},
	}, nil
}
