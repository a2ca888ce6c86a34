package models

import "time"

type Patient struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   Address   `bson:"address" json:"address"`
	DOB       string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender    string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PatientSnapshot is the denormalized copy embedded into an appointment
// at booking time, sans password.
type PatientSnapshot struct {
	ID      string  `bson:"_id" json:"id"`
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Phone   string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Address Address `bson:"address" json:"address"`
	DOB     string  `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender  string  `bson:"gender,omitempty" json:"gender,omitempty"`
	Image   string  `bson:"image,omitempty" json:"image,omitempty"`
}

func (p *Patient) Snapshot() PatientSnapshot {
	return PatientSnapshot{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		DOB:     p.DOB,
		Gender:  p.Gender,
		Image:   p.Image,
	}
}
