package requests

import (
	"mime/multipart"
)

// AddDoctor is bound from the admin multipart form. Address arrives as
// a JSON-encoded object in a single form field, the way the admin
// console submits it.
type AddDoctor struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8"`
	Speciality string `validate:"required"`
	Degree     string `validate:"required"`
	Experience string `validate:"required"`
	About      string `validate:"required"`
	Fee        int    `validate:"required,gt=0"`
	Address    AddressPayload

	ImageFile   multipart.File        `validate:"-"`
	ImageHeader *multipart.FileHeader `validate:"-"`
}

type AddressPayload struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type ChangeAvailability struct {
	DoctorID  string `json:"id" validate:"required"`
	Available *bool  `json:"isAvailable" validate:"required"`
}
