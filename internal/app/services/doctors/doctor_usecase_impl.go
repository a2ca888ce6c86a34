package doctors

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/slots"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Storage          contracts.Storage
	Logger           *zap.Logger
	CacheTTL         time.Duration
	Location         *time.Location
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", internalConfig.App.Timezone))
		location = time.Local
	}
	return &DoctorUsecase{
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		Storage:          storage,
		Logger:           logger,
		CacheTTL:         time.Duration(internalConfig.App.CacheTTLInSeconds) * time.Second,
		Location:         location,
	}
}

func (uc *DoctorUsecase) AddDoctor(ctx context.Context, request *requests.AddDoctor) (*responses.DoctorAdded, error) {
	if request.ImageFile == nil || request.ImageHeader == nil {
		return nil, exceptions.ErrDoctorImageRequired(nil)
	}

	email := utils.SanitizeEmail(request.Email)
	existing, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDoctorEmailAlreadyExists(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	imageURL, err := uc.Storage.UploadFile(ctx, request.ImageFile, request.ImageHeader)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		Name:       request.Name,
		Email:      email,
		Password:   hashedPassword,
		Image:      imageURL,
		Speciality: request.Speciality,
		Degree:     request.Degree,
		Experience: request.Experience,
		About:      request.About,
		Fee:        request.Fee,
		Available:  true,
		Address: models.Address{
			Line1: request.Address.Line1,
			Line2: request.Address.Line2,
		},
		BookedSlots: map[string][]string{},
		CreatedAt:   time.Now(),
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx, constvars.RedisKeyDoctorDirectory)
	uc.Logger.Info("doctor added", zap.String("doctorId", doctorID))

	return &responses.DoctorAdded{
		ID:    doctorID,
		Name:  doctor.Name,
		Email: doctor.Email,
	}, nil
}

// ListDoctors serves the public directory through a read-through cache;
// a cache failure degrades to a direct read.
func (uc *DoctorUsecase) ListDoctors(ctx context.Context) (*responses.DoctorList, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorDirectory)
	if err != nil {
		uc.Logger.Warn("doctor directory cache read failed", zap.Error(err))
	}
	if cached != "" {
		doctors := []models.Doctor{}
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return &responses.DoctorList{Doctors: doctors}, nil
		}
		uc.Logger.Warn("doctor directory cache entry corrupt, refetching")
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(doctors); err == nil {
		if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorDirectory, string(encoded), uc.CacheTTL); err != nil {
			uc.Logger.Warn("doctor directory cache write failed", zap.Error(err))
		}
	}

	return &responses.DoctorList{Doctors: doctors}, nil
}

func (uc *DoctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DoctorDeleted, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if err := uc.DoctorRepository.DeleteByID(ctx, doctorID); err != nil {
		return nil, err
	}

	// The stored image is removed best-effort; the directory record is
	// already gone and an orphaned object must not fail the request.
	if doctor.Image != "" && uc.Storage.Configured() && uc.Storage.OwnsURL(doctor.Image) {
		if err := uc.Storage.RemoveByURL(ctx, doctor.Image); err != nil {
			uc.Logger.Warn("doctor image removal failed",
				zap.String("doctorId", doctorID),
				zap.Error(err),
			)
		}
	}

	uc.invalidateCache(ctx,
		constvars.RedisKeyDoctorDirectory,
		fmt.Sprintf(constvars.RedisKeyBookedSlotsFormat, doctorID),
	)

	return &responses.DoctorDeleted{
		ID:    doctor.ID,
		Name:  doctor.Name,
		Email: doctor.Email,
	}, nil
}

func (uc *DoctorUsecase) ChangeAvailability(ctx context.Context, request *requests.ChangeAvailability) (*responses.DoctorAvailability, error) {
	doctor, err := uc.DoctorRepository.SetAvailability(ctx, request.DoctorID, *request.Available)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	uc.invalidateCache(ctx, constvars.RedisKeyDoctorDirectory)

	return &responses.DoctorAvailability{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Email:     doctor.Email,
		Available: doctor.Available,
	}, nil
}

func (uc *DoctorUsecase) GetAvailability(ctx context.Context, doctorID string) (*responses.DoctorAvailability, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	return &responses.DoctorAvailability{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Email:     doctor.Email,
		Available: doctor.Available,
	}, nil
}

func (uc *DoctorUsecase) GetBookedSlots(ctx context.Context, doctorID string) (*responses.BookedSlots, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyBookedSlotsFormat, doctorID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Logger.Warn("booked slots cache read failed", zap.Error(err))
	}
	if cached != "" {
		bookedSlots := map[string][]string{}
		if err := json.Unmarshal([]byte(cached), &bookedSlots); err == nil {
			return &responses.BookedSlots{BookedSlots: bookedSlots}, nil
		}
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	bookedSlots := doctor.BookedSlots
	if bookedSlots == nil {
		bookedSlots = map[string][]string{}
	}

	if encoded, err := json.Marshal(bookedSlots); err == nil {
		if err := uc.RedisRepository.Set(ctx, cacheKey, string(encoded), uc.CacheTTL); err != nil {
			uc.Logger.Warn("booked slots cache write failed", zap.Error(err))
		}
	}

	return &responses.BookedSlots{BookedSlots: bookedSlots}, nil
}

// GetOpenSlots is advisory: it reads the live booked map once and
// computes the window, so a concurrent booking can invalidate an
// offered slot before the client uses it.
func (uc *DoctorUsecase) GetOpenSlots(ctx context.Context, doctorID string) (*responses.OpenSlots, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	days := slots.Generate(time.Now().In(uc.Location), doctor.BookedSlots)
	result := make([]responses.DaySlots, 0, len(days))
	for _, day := range days {
		result = append(result, responses.DaySlots{
			DateKey: day.DateKey,
			Times:   day.Times,
		})
	}

	return &responses.OpenSlots{Days: result}, nil
}

func (uc *DoctorUsecase) invalidateCache(ctx context.Context, keys ...string) {
	if err := uc.RedisRepository.Delete(ctx, keys...); err != nil {
		uc.Logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
