package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

type stubEmployeeStore struct {
	listFn   func(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error)
	existsFn func(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error)
	createFn func(ctx context.Context, employee *models.Employee) error

	lastQuery   repositories.EmployeeQuery
	createCalls int
}

func (s *stubEmployeeStore) List(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error) {
	s.lastQuery = q
	if s.listFn != nil {
		return s.listFn(ctx, q)
	}
	return []models.Employee{}, 0, nil
}

func (s *stubEmployeeStore) ExistsByIdentity(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, firstName, lastName, departmentID)
	}
	return false, nil
}

func (s *stubEmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(ctx, employee)
	}
	employee.ID = 1
	return nil
}

type stubDepartmentStore struct {
	allFn    func(ctx context.Context) ([]models.Department, error)
	byIDFn   func(ctx context.Context, id int64) (*models.Department, error)
	byNameFn func(ctx context.Context, name string) (*models.Department, error)
}

func (s *stubDepartmentStore) GetAll(ctx context.Context) ([]models.Department, error) {
	if s.allFn != nil {
		return s.allFn(ctx)
	}
	return []models.Department{}, nil
}

func (s *stubDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if s.byIDFn != nil {
		return s.byIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubDepartmentStore) GetByName(ctx context.Context, name string) (*models.Department, error) {
	if s.byNameFn != nil {
		return s.byNameFn(ctx, name)
	}
	return nil, nil
}

func sampleEmployees(n int) []models.Employee {
	employees := make([]models.Employee, 0, n)
	for i := 0; i < n; i++ {
		employees = append(employees, models.Employee{
			ID:        int64(i + 1),
			FirstName: "Pat",
			LastName:  "Doe",
		})
	}
	return employees
}

func TestListEmployees(t *testing.T) {
	t.Run("computes pagination meta from the total match count", func(t *testing.T) {
		store := &stubEmployeeStore{
			listFn: func(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error) {
				return sampleEmployees(10), 25, nil
			},
		}
		service := NewEmployeeService(store, &stubDepartmentStore{})

		page, err := service.ListEmployees(context.Background(), helpers.ListParams{Page: 2, Size: 10})
		require.NoError(t, err)
		require.Len(t, page.Employees, 10)
		require.Equal(t, 3, page.Meta.TotalPages)
		require.Equal(t, 2, page.Meta.CurrentPage)
	})

	t.Run("empty collection is an empty page", func(t *testing.T) {
		service := NewEmployeeService(&stubEmployeeStore{}, &stubDepartmentStore{})

		page, err := service.ListEmployees(context.Background(), helpers.ListParams{Page: 1, Size: 10})
		require.NoError(t, err)
		require.Empty(t, page.Employees)
		require.Equal(t, 0, page.Meta.TotalPages)
	})

	t.Run("passes sort spec through to the store", func(t *testing.T) {
		store := &stubEmployeeStore{}
		service := NewEmployeeService(store, &stubDepartmentStore{})

		_, err := service.ListEmployees(context.Background(), helpers.ListParams{
			Page: 1, Size: 10,
			Sort: helpers.SortSpec{Field: "age", Desc: true},
		})
		require.NoError(t, err)
		require.Equal(t, helpers.SortSpec{Field: "age", Desc: true}, store.lastQuery.Sort)
		require.Nil(t, store.lastQuery.DepartmentID)
	})
}

func TestSearchEmployees(t *testing.T) {
	t.Run("zero matches reported as not found", func(t *testing.T) {
		service := NewEmployeeService(&stubEmployeeStore{}, &stubDepartmentStore{})

		_, err := service.SearchEmployees(context.Background(), "zzzz", helpers.ListParams{Page: 1, Size: 10})
		require.ErrorIs(t, err, apperrors.ErrNoEmployeesFound)
	})

	t.Run("matches become a page with the search text applied", func(t *testing.T) {
		store := &stubEmployeeStore{
			listFn: func(ctx context.Context, q repositories.EmployeeQuery) ([]models.Employee, int64, error) {
				return sampleEmployees(2), 2, nil
			},
		}
		service := NewEmployeeService(store, &stubDepartmentStore{})

		page, err := service.SearchEmployees(context.Background(), "doe", helpers.ListParams{Page: 1, Size: 10})
		require.NoError(t, err)
		require.Len(t, page.Employees, 2)
		require.Equal(t, "doe", store.lastQuery.NameContains)
	})
}

func TestListDepartmentEmployees(t *testing.T) {
	engineering := &models.Department{ID: 3, Name: "Engineering"}

	t.Run("unknown department name is an error", func(t *testing.T) {
		service := NewEmployeeService(&stubEmployeeStore{}, &stubDepartmentStore{})

		_, err := service.ListDepartmentEmployees(context.Background(), "Astronomy", "", helpers.ListParams{Page: 1, Size: 10})
		require.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("scopes the query to the resolved department", func(t *testing.T) {
		store := &stubEmployeeStore{}
		departments := &stubDepartmentStore{
			byNameFn: func(ctx context.Context, name string) (*models.Department, error) {
				require.Equal(t, "Engineering", name)
				return engineering, nil
			},
		}
		service := NewEmployeeService(store, departments)

		_, err := service.ListDepartmentEmployees(context.Background(), "Engineering", "ann", helpers.ListParams{Page: 1, Size: 10})
		require.NoError(t, err)
		require.NotNil(t, store.lastQuery.DepartmentID)
		require.Equal(t, int64(3), *store.lastQuery.DepartmentID)
		require.Equal(t, "ann", store.lastQuery.NameContains)
	})

	t.Run("zero matches in a known department is an empty page", func(t *testing.T) {
		departments := &stubDepartmentStore{
			byNameFn: func(ctx context.Context, name string) (*models.Department, error) {
				return engineering, nil
			},
		}
		service := NewEmployeeService(&stubEmployeeStore{}, departments)

		page, err := service.ListDepartmentEmployees(context.Background(), "Engineering", "zzzz", helpers.ListParams{Page: 1, Size: 10})
		require.NoError(t, err)
		require.Empty(t, page.Employees)
		require.Equal(t, 0, page.Meta.TotalPages)
	})
}

func TestCreateEmployee(t *testing.T) {
	validRequest := dto.CreateEmployeeRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Age:          36,
		Position:     "Engineer",
		DepartmentID: 3,
	}
	engineering := &models.Department{ID: 3, Name: "Engineering"}
	departments := &stubDepartmentStore{
		byIDFn: func(ctx context.Context, id int64) (*models.Department, error) {
			if id == engineering.ID {
				return engineering, nil
			}
			return nil, nil
		},
	}

	t.Run("creates and embeds the department", func(t *testing.T) {
		store := &stubEmployeeStore{}
		service := NewEmployeeService(store, departments)

		employee, err := service.CreateEmployee(context.Background(), validRequest)
		require.NoError(t, err)
		require.Equal(t, int64(1), employee.ID)
		require.Equal(t, 1, store.createCalls)
		require.NotNil(t, employee.Department)
		require.Equal(t, "Engineering", employee.Department.Name)
	})

	t.Run("duplicate identity in the department is a conflict", func(t *testing.T) {
		store := &stubEmployeeStore{
			existsFn: func(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error) {
				return true, nil
			},
		}
		service := NewEmployeeService(store, departments)

		_, err := service.CreateEmployee(context.Background(), validRequest)
		require.ErrorIs(t, err, apperrors.ErrDuplicateEmployee)
		require.Zero(t, store.createCalls)
	})

	t.Run("blank fields fail validation without touching the store", func(t *testing.T) {
		store := &stubEmployeeStore{}
		service := NewEmployeeService(store, departments)

		request := validRequest
		request.Position = "   "
		request.Age = 0

		_, err := service.CreateEmployee(context.Background(), request)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		fields := apperrors.FieldsOf(err)
		require.Contains(t, fields, "position")
		require.Contains(t, fields, "age")
		require.Zero(t, store.createCalls)
	})

	t.Run("unknown department fails validation", func(t *testing.T) {
		store := &stubEmployeeStore{}
		service := NewEmployeeService(store, departments)

		request := validRequest
		request.DepartmentID = 999

		_, err := service.CreateEmployee(context.Background(), request)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		require.Contains(t, apperrors.FieldsOf(err), "department_id")
		require.Zero(t, store.createCalls)
	})
}
