package employee

// CreateEmployeeDTO carries the fields for the combined user+employee
// creation workflow. Validation is presence-only.
type CreateEmployeeDTO struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateEmployeeDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.FirstName == "" {
		return ValidationError{Msg: "first_name is required"}
	}
	if d.LastName == "" {
		return ValidationError{Msg: "last_name is required"}
	}
	if d.Department == "" {
		return ValidationError{Msg: "department is required"}
	}
	if d.Position == "" {
		return ValidationError{Msg: "position is required"}
	}
	return nil
}

// CreateEmployeeResponse echoes the default password once, at creation
// time, so the admin can hand it over.
type CreateEmployeeResponse struct {
	EmployeeID      string `json:"employee_id"`
	DefaultPassword string `json:"default_password"`
}
