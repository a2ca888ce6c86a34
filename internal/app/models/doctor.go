package models

import "time"

type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2" json:"line2"`
}

// Doctor is the live directory record. BookedSlots maps a date key
// ("day_month_year", 1-based month, no padding) to the time labels
// ("h:mm am|pm") already reserved for that day. A time label appears at
// most once per date key; the appointment ledger is the only writer.
type Doctor struct {
	ID          string              `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Email       string              `bson:"email" json:"email"`
	Password    string              `bson:"password" json:"-"`
	Image       string              `bson:"image" json:"image"`
	Speciality  string              `bson:"speciality" json:"speciality"`
	Degree      string              `bson:"degree" json:"degree"`
	Experience  string              `bson:"experience" json:"experience"`
	About       string              `bson:"about" json:"about"`
	Fee         int                 `bson:"fee" json:"fee"`
	Available   bool                `bson:"available" json:"available"`
	Address     Address             `bson:"address" json:"address"`
	BookedSlots map[string][]string `bson:"bookedSlots" json:"bookedSlots"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// DoctorSnapshot is the denormalized copy embedded into an appointment
// at booking time. It never changes after creation, even when the live
// doctor record does.
type DoctorSnapshot struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Image      string    `bson:"image" json:"image"`
	Speciality string    `bson:"speciality" json:"speciality"`
	Degree     string    `bson:"degree" json:"degree"`
	Experience string    `bson:"experience" json:"experience"`
	About      string    `bson:"about" json:"about"`
	Fee        int       `bson:"fee" json:"fee"`
	Address    Address   `bson:"address" json:"address"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Snapshot copies the doctor sans password and booked-slot map.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		About:      d.About,
		Fee:        d.Fee,
		Address:    d.Address,
		CreatedAt:  d.CreatedAt,
	}
}
