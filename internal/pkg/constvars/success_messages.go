package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccess      = "login successful"
	RegisterSuccess   = "user registered successfully"
	EmailAvailable    = "email is available for registration"
	EmailAlreadyTaken = "user with this email already exists"
	AdminLoginSuccess = "admin login successful"

	// Profile messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Doctor messages
	DoctorAddedSuccess        = "doctor added"
	DoctorListSuccess         = "doctors list fetched successfully"
	DoctorDeletedSuccess      = "doctor deleted successfully"
	DoctorAvailabilitySuccess = "doctor availability updated successfully"
	BookedSlotsGetSuccess     = "booked slots fetched successfully"
	OpenSlotsGetSuccess       = "open slots fetched successfully"

	// Appointment messages
	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentListSuccess      = "appointments fetched successfully"
	AppointmentCancelledSuccess = "appointment cancelled"
	AppointmentDeletedSuccess   = "appointment deleted successfully"
	AppointmentPaidSuccess      = "appointment marked as paid"
)
