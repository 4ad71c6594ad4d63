package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

type employeeService struct {
	employeeStore   EmployeeStore
	departmentStore DepartmentStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeStore EmployeeStore, departmentStore DepartmentStore) EmployeeService {
	return &employeeService{
		employeeStore:   employeeStore,
		departmentStore: departmentStore,
	}
}

// ListEmployees retrieves one page of the whole employee collection. An
// empty collection is a valid empty page, not an error.
func (s *employeeService) ListEmployees(ctx context.Context, params helpers.ListParams) (*EmployeePage, error) {
	return s.listPage(ctx, repositories.EmployeeQuery{
		Sort: params.Sort,
		Page: params.Page,
		Size: params.Size,
	}, params)
}

// SearchEmployees retrieves employees whose first or last name contains
// the text, case-insensitively. Zero matches across the whole collection
// surface as ErrNoEmployeesFound, mirroring the directory's established
// contract with its clients.
func (s *employeeService) SearchEmployees(ctx context.Context, text string, params helpers.ListParams) (*EmployeePage, error) {
	page, err := s.listPage(ctx, repositories.EmployeeQuery{
		NameContains: text,
		Sort:         params.Sort,
		Page:         params.Page,
		Size:         params.Size,
	}, params)
	if err != nil {
		return nil, err
	}

	if page.Meta.TotalPages == 0 {
		return nil, apperrors.ErrNoEmployeesFound
	}
	return page, nil
}

// ListDepartmentEmployees retrieves one page of a department's members,
// optionally narrowed by an employee name fragment. The department is
// looked up by exact, case-sensitive name; an unknown name is an error,
// never a silently empty result.
func (s *employeeService) ListDepartmentEmployees(ctx context.Context, departmentName, employeeName string, params helpers.ListParams) (*EmployeePage, error) {
	department, err := s.departmentStore.GetByName(ctx, departmentName)
	if err != nil {
		return nil, fmt.Errorf("error resolving department scope: %w", err)
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	return s.listPage(ctx, repositories.EmployeeQuery{
		DepartmentID: &department.ID,
		NameContains: employeeName,
		Sort:         params.Sort,
		Page:         params.Page,
		Size:         params.Size,
	}, params)
}

// CreateEmployee validates and persists a new employee, returning the
// created record with its department embedded.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	if fields := validateCreateEmployee(req); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	department, err := s.departmentStore.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking department: %w", err)
	}
	if department == nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"department_id": fmt.Sprintf("department %d does not exist", req.DepartmentID),
		})
	}

	exists, err := s.employeeStore.ExistsByIdentity(ctx, req.FirstName, req.LastName, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking employee uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmployee
	}

	employee := &models.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Age:          req.Age,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
	}
	if err := s.employeeStore.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	employee.Department = department
	return employee, nil
}

func (s *employeeService) listPage(ctx context.Context, q repositories.EmployeeQuery, params helpers.ListParams) (*EmployeePage, error) {
	employees, total, err := s.employeeStore.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	return &EmployeePage{
		Employees: employees,
		Meta:      helpers.NewListMeta(total, params.Page, params.Size),
	}, nil
}

// validateCreateEmployee applies the write-time rules on top of request
// binding: no blank names or positions, a sane age.
func validateCreateEmployee(req dto.CreateEmployeeRequest) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "first_name cannot be blank"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "last_name cannot be blank"
	}
	if strings.TrimSpace(req.Position) == "" {
		fields["position"] = "position cannot be blank"
	}
	if req.Age <= 0 {
		fields["age"] = "age must be a positive integer"
	}
	if req.DepartmentID <= 0 {
		fields["department_id"] = "department_id is required"
	}
	return fields
}
