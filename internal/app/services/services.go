package services

import (
	"context"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

// DepartmentService handles department-related operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context, includeEmployees bool) ([]models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
}

// EmployeeService handles employee-related operations
type EmployeeService interface {
	ListEmployees(ctx context.Context, params helpers.ListParams) (*EmployeePage, error)
	SearchEmployees(ctx context.Context, text string, params helpers.ListParams) (*EmployeePage, error)
	ListDepartmentEmployees(ctx context.Context, departmentName, employeeName string, params helpers.ListParams) (*EmployeePage, error)
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error)
}

// EmployeePage is one page of a filtered employee listing plus its
// pagination meta.
type EmployeePage struct {
	Employees []models.Employee
	Meta      dto.ListMeta
}

// DepartmentStore is the department data access used by the services
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
}

// EmployeeStore is the employee data access used by the services
type EmployeeStore interface {
	List(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error)
	ExistsByIdentity(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error)
	Create(ctx context.Context, employee *models.Employee) error
}
