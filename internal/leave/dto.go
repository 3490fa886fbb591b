package leave

// CreateLeaveDTO carries a leave request submission. Dates are opaque
// strings; validation is presence-only.
type CreateLeaveDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateLeaveDTO) Validate() error {
	if d.StartDate == "" {
		return ValidationError{Msg: "start_date is required"}
	}
	if d.EndDate == "" {
		return ValidationError{Msg: "end_date is required"}
	}
	if d.LeaveType == "" {
		return ValidationError{Msg: "leave_type is required"}
	}
	return nil
}

// UpdateStatusDTO carries the approval workflow action.
type UpdateStatusDTO struct {
	Action string `json:"action"`
}
