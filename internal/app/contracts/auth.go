package contracts

import (
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.PatientAuth, error)
	LoginPatient(ctx context.Context, request *requests.LoginPatient) (*responses.PatientAuth, error)
}
