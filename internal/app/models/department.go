package models

// Department represents a department in the directory
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Employees is populated only when the caller asks for the
	// department together with its members.
	Employees []Employee `json:"employees,omitempty"`
}
