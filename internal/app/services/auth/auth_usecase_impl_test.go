package auth

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients map[string]*models.Patient
	nextID   int
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	f.nextID++
	stored := *patient
	stored.ID = fmt.Sprintf("pat-%d", f.nextID)
	f.patients[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, patient := range f.patients {
		if patient.Email == email {
			return patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func (f *fakePatientRepository) UpdateFields(ctx context.Context, patientID string, updateData map[string]interface{}) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
		Admin: config.Admin{
			Email:    "admin@clinic.test",
			Password: "admin-password",
		},
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()
	usecase := NewAuthUsecase(&fakePatientRepository{patients: map[string]*models.Patient{}}, testInternalConfig(), zap.NewNop())

	t.Run("issues an admin token for the configured identity", func(t *testing.T) {
		response, err := usecase.LoginAdmin(ctx, &requests.AdminLogin{
			Email:    "admin@clinic.test",
			Password: "admin-password",
		})
		require.NoError(t, err)

		claims, err := utils.ParseJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, claims["role"])
		assert.Equal(t, "admin@clinic.test", claims["email"])
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := usecase.LoginAdmin(ctx, &requests.AdminLogin{
			Email:    "admin@clinic.test",
			Password: "guess",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
	})
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("registers, hashes the password and returns a token", func(t *testing.T) {
		repo := &fakePatientRepository{patients: map[string]*models.Patient{}}
		usecase := NewAuthUsecase(repo, testInternalConfig(), zap.NewNop())

		response, err := usecase.RegisterPatient(ctx, &requests.RegisterPatient{
			Name:     "Alice",
			Email:    " Alice@Example.COM ",
			Password: "hunter22hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", response.Patient.Email)

		stored := repo.patients[response.Patient.ID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "hunter22hunter22", stored.Password)
		assert.True(t, utils.CheckPasswordHash("hunter22hunter22", stored.Password))

		claims, err := utils.ParseJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, response.Patient.ID, claims["id"])
	})

	t.Run("conflicts on a duplicate email", func(t *testing.T) {
		repo := &fakePatientRepository{patients: map[string]*models.Patient{}}
		usecase := NewAuthUsecase(repo, testInternalConfig(), zap.NewNop())

		_, err := usecase.RegisterPatient(ctx, &requests.RegisterPatient{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hunter22hunter22",
		})
		require.NoError(t, err)

		_, err = usecase.RegisterPatient(ctx, &requests.RegisterPatient{
			Name:     "Other Alice",
			Email:    "ALICE@example.com",
			Password: "another-password",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
		assert.Len(t, repo.patients, 1)
	})
}

func TestLoginPatient(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*fakePatientRepository, *AuthUsecase) {
		t.Helper()
		repo := &fakePatientRepository{patients: map[string]*models.Patient{}}
		hash, err := utils.HashPassword("hunter22hunter22")
		require.NoError(t, err)
		repo.patients["pat-1"] = &models.Patient{
			ID:       "pat-1",
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: hash,
		}
		return repo, NewAuthUsecase(repo, testInternalConfig(), zap.NewNop()).(*AuthUsecase)
	}

	t.Run("logs in with the right password", func(t *testing.T) {
		_, usecase := newFixture(t)

		response, err := usecase.LoginPatient(ctx, &requests.LoginPatient{
			Email:    "alice@example.com",
			Password: "hunter22hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, "pat-1", response.Patient.ID)
	})

	t.Run("unknown email is a 404", func(t *testing.T) {
		_, usecase := newFixture(t)

		_, err := usecase.LoginPatient(ctx, &requests.LoginPatient{
			Email:    "nobody@example.com",
			Password: "hunter22hunter22",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		_, usecase := newFixture(t)

		_, err := usecase.LoginPatient(ctx, &requests.LoginPatient{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
	})
}
