package hrclient

// Response DTOs for the upstream HR API. These mirror only the fields
// this system consumes; the wire format belongs to the upstream system.

type clockEventDTO struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // ISO-8601, upstream local time
}

type clockEventsResponse struct {
	Events []clockEventDTO `json:"events"`
}

type leaveGrantDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"` // 2006-01-02
	ToDate     string `json:"to_date"`
	LeaveType  string `json:"leave_type"`
	IsHalfDay  bool   `json:"is_half_day"`
	Approved   bool   `json:"approved"`
}

type leaveGrantsResponse struct {
	Grants []leaveGrantDTO `json:"grants"`
}
