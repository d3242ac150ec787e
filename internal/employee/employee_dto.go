package employee

type EmployeeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func mapToResponse(e *EmployeeRecord) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.ID,
		Email: e.Email,
	}
}
