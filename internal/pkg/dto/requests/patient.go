package requests

import "mime/multipart"

// UpdateProfile carries only the fields the client explicitly sent;
// nil pointers mean "leave unchanged". Address arrives JSON-encoded in
// a single multipart field and is normalized so both lines are always
// present.
type UpdateProfile struct {
	Name    *string
	Phone   *string
	DOB     *string
	Gender  *string
	Address *AddressPayload

	ImageFile   multipart.File        `validate:"-"`
	ImageHeader *multipart.FileHeader `validate:"-"`
}

func (r *UpdateProfile) HasFields() bool {
	return r.Name != nil || r.Phone != nil || r.DOB != nil || r.Gender != nil || r.Address != nil
}
