package dto

// CreateEmployeeRequest represents employee creation data
type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Age          int    `json:"age" binding:"required,gt=0"`
	Position     string `json:"position" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required,gt=0"`
}
