package profile

type SaveProfileRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Contact          string `json:"contact" binding:"required"`
	Birthday         string `json:"birthday" binding:"required,datetime=2006-01-02"`
	CivilStatus      string `json:"civil_status" binding:"required,oneof=single married widowed separated"`
	SSS              string `json:"sss"`
	Philhealth       string `json:"philhealth"`
	TIN              string `json:"tin"`
	Pagibig          string `json:"pagibig"`
	EmergencyContact string `json:"emergency_contact"`
}

type ProfileResponse struct {
	UserID           string `json:"user_id"`
	FullName         string `json:"full_name"`
	Address          string `json:"address"`
	Contact          string `json:"contact"`
	Birthday         string `json:"birthday"`
	CivilStatus      string `json:"civil_status"`
	SSS              string `json:"sss"`
	Philhealth       string `json:"philhealth"`
	TIN              string `json:"tin"`
	Pagibig          string `json:"pagibig"`
	EmergencyContact string `json:"emergency_contact"`
}

func mapToResponse(p EmployeeProfile) ProfileResponse {
	return ProfileResponse{
		UserID:           p.UserID.String(),
		FullName:         p.FullName,
		Address:          p.Address,
		Contact:          p.Contact,
		Birthday:         p.Birthday,
		CivilStatus:      p.CivilStatus,
		SSS:              p.SSS,
		Philhealth:       p.Philhealth,
		TIN:              p.TIN,
		Pagibig:          p.Pagibig,
		EmergencyContact: p.EmergencyContact,
	}
}

// emptyResponse is the fixed field set a user without a saved profile sees.
func emptyResponse(userID string) ProfileResponse {
	return ProfileResponse{UserID: userID}
}
