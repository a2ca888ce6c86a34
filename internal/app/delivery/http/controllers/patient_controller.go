package controllers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log                *zap.Logger
	PatientUsecase     contracts.PatientUsecase
	MaxMultipartMemory int64
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:                logger,
		PatientUsecase:     patientUsecase,
		MaxMultipartMemory: int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20,
	}
}

func (ctrl *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetProfile(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

// UpdateProfile binds only the multipart fields the client actually
// sent, so an empty string overwrites and an absent field does not.
func (ctrl *PatientController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = r.ParseMultipartForm(ctrl.MaxMultipartMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := new(requests.UpdateProfile)
	request.Name = formValueIfPresent(r, "name")
	request.Phone = formValueIfPresent(r, "phone")
	request.DOB = formValueIfPresent(r, "dob")
	request.Gender = formValueIfPresent(r, "gender")

	if addressValue := formValueIfPresent(r, "address"); addressValue != nil {
		address := new(requests.AddressPayload)
		if err := json.Unmarshal([]byte(*addressValue), address); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, "address"))
			return
		}
		request.Address = address
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		request.ImageFile = file
		request.ImageHeader = header
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdateProfile(ctx, patientID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, response)
}

func (ctrl *PatientController) CheckExists(w http.ResponseWriter, r *http.Request) {
	query := struct {
		Email string `validate:"required,email"`
	}{
		Email: r.URL.Query().Get("email"),
	}
	if err := utils.ValidateStruct(&query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CheckExists(ctx, query.Email)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.EmailAvailable
	if response.Exists {
		message = constvars.EmailAlreadyTaken
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func patientIDFromContext(r *http.Request) (string, error) {
	patientID, ok := r.Context().Value(constvars.CONTEXT_PATIENT_ID_KEY).(string)
	if !ok || patientID == "" {
		return "", exceptions.ErrTokenInvalid(nil)
	}
	return patientID, nil
}

func formValueIfPresent(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
