package services

import (
	"context"
	"fmt"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
)

type departmentService struct {
	departmentStore DepartmentStore
	employeeStore   EmployeeStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentStore DepartmentStore, employeeStore EmployeeStore) DepartmentService {
	return &departmentService{
		departmentStore: departmentStore,
		employeeStore:   employeeStore,
	}
}

// GetAllDepartments retrieves all departments, optionally with their
// employees embedded.
func (s *departmentService) GetAllDepartments(ctx context.Context, includeEmployees bool) ([]models.Department, error) {
	departments, err := s.departmentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}

	if includeEmployees {
		for i := range departments {
			if err := s.attachEmployees(ctx, &departments[i]); err != nil {
				return nil, err
			}
		}
	}

	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

// attachEmployees loads every member of a department onto the model,
// paging through the store until the full member list is assembled.
func (s *departmentService) attachEmployees(ctx context.Context, department *models.Department) error {
	var members []models.Employee
	for page := 1; ; page++ {
		employees, total, err := s.employeeStore.List(ctx, repositories.EmployeeQuery{
			DepartmentID: &department.ID,
			Page:         page,
			Size:         memberPageSize,
		})
		if err != nil {
			return fmt.Errorf("error loading employees for department %d: %w", department.ID, err)
		}
		members = append(members, employees...)
		if len(employees) == 0 || int64(len(members)) >= total {
			break
		}
	}

	// Embedding again inside the owner would make the payload recursive.
	for i := range members {
		members[i].Department = nil
	}
	department.Employees = members
	return nil
}

// memberPageSize is the page size used when assembling a department's
// full member list.
const memberPageSize = 100
