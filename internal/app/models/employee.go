package models

// Employee represents a single employee record
type Employee struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"department_id"`

	// Department carries the owning department's identifying fields so
	// list responses never need a second lookup.
	Department *Department `json:"department,omitempty"`
}
