package models

import "time"

// Appointment records one booked slot. PatientData and DoctorData are
// value snapshots taken when the booking is written; they stay frozen
// for historical display no matter how the source records change later.
//
// Status moves pending->paid or pending|paid->cancelled; a delete hard
// removes the record. "completed" is part of the stored vocabulary but
// nothing sets it.
type Appointment struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	PatientID   string          `bson:"patientId" json:"patientId"`
	DoctorID    string          `bson:"doctorId" json:"doctorId"`
	DateKey     string          `bson:"slotDate" json:"slotDate"`
	TimeLabel   string          `bson:"slotTime" json:"slotTime"`
	PatientData PatientSnapshot `bson:"userData" json:"userData"`
	DoctorData  DoctorSnapshot  `bson:"docData" json:"docData"`
	Amount      int             `bson:"amount" json:"amount"`
	Status      string          `bson:"status" json:"status"`
	Payment     bool            `bson:"payment" json:"payment"`
	IsCompleted bool            `bson:"isCompleted" json:"isCompleted"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}
