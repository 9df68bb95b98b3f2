package employee

import "time"

type Employee struct {
	ID        string
	BranchID  string
	Code      string
	FirstName string
	LastName  string
	Position  *string
	HireDate  *time.Time
	Active    bool
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
