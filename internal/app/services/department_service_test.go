package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
)

func TestGetDepartmentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		departments := &stubDepartmentStore{
			byIDFn: func(ctx context.Context, id int64) (*models.Department, error) {
				return &models.Department{ID: id, Name: "Legal"}, nil
			},
		}
		service := NewDepartmentService(departments, &stubEmployeeStore{})

		department, err := service.GetDepartmentByID(context.Background(), 4)
		require.NoError(t, err)
		require.Equal(t, "Legal", department.Name)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		service := NewDepartmentService(&stubDepartmentStore{}, &stubEmployeeStore{})

		_, err := service.GetDepartmentByID(context.Background(), 999)
		require.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

func TestGetAllDepartments(t *testing.T) {
	departments := &stubDepartmentStore{
		allFn: func(ctx context.Context) ([]models.Department, error) {
			return []models.Department{
				{ID: 1, Name: "Engineering"},
				{ID: 2, Name: "Sales"},
			}, nil
		},
	}

	t.Run("without employees", func(t *testing.T) {
		service := NewDepartmentService(departments, &stubEmployeeStore{})

		result, err := service.GetAllDepartments(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Nil(t, result[0].Employees)
	})

	t.Run("embeds members without recursing", func(t *testing.T) {
		store := &stubEmployeeStore{
			listFn: func(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error) {
				require.NotNil(t, q.DepartmentID)
				if q.Page > 1 {
					return []models.Employee{}, 3, nil
				}
				employees := sampleEmployees(3)
				for i := range employees {
					employees[i].DepartmentID = *q.DepartmentID
					employees[i].Department = &models.Department{ID: *q.DepartmentID}
				}
				return employees, 3, nil
			},
		}
		service := NewDepartmentService(departments, store)

		result, err := service.GetAllDepartments(context.Background(), true)
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Len(t, result[0].Employees, 3)
		for _, member := range result[0].Employees {
			require.Nil(t, member.Department)
		}
	})

	t.Run("pages through large departments", func(t *testing.T) {
		var pagesRequested []int
		store := &stubEmployeeStore{
			listFn: func(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error) {
				pagesRequested = append(pagesRequested, q.Page)
				if q.Page == 1 {
					return sampleEmployees(memberPageSize), memberPageSize + 20, nil
				}
				return sampleEmployees(20), memberPageSize + 20, nil
			},
		}
		single := &stubDepartmentStore{
			allFn: func(ctx context.Context) ([]models.Department, error) {
				return []models.Department{{ID: 1, Name: "Engineering"}}, nil
			},
		}
		service := NewDepartmentService(single, store)

		result, err := service.GetAllDepartments(context.Background(), true)
		require.NoError(t, err)
		require.Len(t, result[0].Employees, memberPageSize+20)
		require.Equal(t, []int{1, 2}, pagesRequested)
	})
}
