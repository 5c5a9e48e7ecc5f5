package models

type SignupRequest struct {
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type ProfileUpdateRequest struct {
	Branch         string   `json:"branch"`
	GraduationYear *int     `json:"graduation_year"`
	CGPA           *float64 `json:"cgpa"`
	Skills         string   `json:"skills"` // comma separated
}

type ResumeSaveRequest struct {
	Headline   string `json:"headline"`
	Skills     string `json:"skills"` // comma separated
	Education  string `json:"education"`
	Projects   string `json:"projects"`
	Experience string `json:"experience"`
	Links      string `json:"links"`
	ATSDriveID string `json:"ats_drive_id"`
}

type DriveCreateRequest struct {
	Name                string `json:"name"`
	Role                string `json:"role"`
	Location            string `json:"location"`
	VisitDate           string `json:"visit_date"` // RFC 3339 or YYYY-MM-DD
	CTC                 string `json:"ctc"`
	EligibilityCriteria string `json:"eligibility_criteria"`
	Description         string `json:"description"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type InterviewUpdateRequest struct {
	Date     string `json:"date"` // RFC 3339 or YYYY-MM-DD
	Mode     string `json:"mode"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

type InterviewGenerateRequest struct {
	DriveID string `json:"drive_id"`
}
