package responses

type AdminLogin struct {
	Token string `json:"token"`
}

type PatientAuth struct {
	Token   string          `json:"token"`
	Patient PatientIdentity `json:"user"`
}

type PatientIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckExists struct {
	Exists  bool             `json:"exists"`
	Patient *PatientIdentity `json:"user,omitempty"`
}
