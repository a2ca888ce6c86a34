package constvars

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)
