package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/db"
)

// EmployeeCount is how many synthetic employees the first boot creates.
const EmployeeCount = 1000

const (
	minAge = 18
	maxAge = 65

	// Fixed source so reseeding an empty database produces the same
	// directory every time.
	randSeed = 1532
)

// departmentNames are the ten fixed departments created at first boot.
var departmentNames = []string{
	"Engineering", "Product", "Legal", "Marketing", "Sales",
	"Support", "HR", "Finance", "Operations", "IT",
}

// CreateDefaultData populates an empty store with the fixed departments
// and the synthetic employee set. Both steps are skipped when their table
// already holds data, so running at every boot is safe.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(database.Pool)
	employeeRepo := repositories.NewEmployeeRepository(database.Pool)

	departmentCount, err := departmentRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check department count: %w", err)
	}

	if departmentCount == 0 {
		lgr.Info().Int("count", len(departmentNames)).Msg("Seeding departments")
		for _, name := range departmentNames {
			if err := departmentRepo.Create(ctx, &models.Department{Name: name}); err != nil {
				return fmt.Errorf("failed to seed department %q: %w", name, err)
			}
		}
	}

	employeeCount, err := employeeRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check employee count: %w", err)
	}
	if employeeCount > 0 {
		lgr.Debug().Int64("count", employeeCount).Msg("Employees already present, skipping seed")
		return nil
	}

	departments, err := departmentRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load departments for seeding: %w", err)
	}
	departmentIDs := make([]int64, len(departments))
	for i, department := range departments {
		departmentIDs[i] = department.ID
	}

	employees := GenerateEmployees(departmentIDs, EmployeeCount)

	lgr.Info().Int("count", len(employees)).Msg("Seeding employees")
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows := make([][]interface{}, len(employees))
		for i, employee := range employees {
			rows[i] = []interface{}{
				employee.FirstName, employee.LastName, employee.Age,
				employee.Position, employee.DepartmentID,
			}
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"employees"},
			[]string{"first_name", "last_name", "age", "position", "department_id"},
			pgx.CopyFromRows(rows),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	return nil
}

// GenerateEmployees produces count synthetic employees spread across the
// given departments. Generation is deterministic and never emits two
// employees with the same first name, last name and department.
func GenerateEmployees(departmentIDs []int64, count int) []models.Employee {
	rng := rand.New(rand.NewSource(randSeed))
	seen := make(map[string]struct{}, count)

	employees := make([]models.Employee, 0, count)
	for len(employees) < count {
		firstName := firstNames[rng.Intn(len(firstNames))]
		lastName := lastNames[rng.Intn(len(lastNames))]
		departmentID := departmentIDs[rng.Intn(len(departmentIDs))]

		key := fmt.Sprintf("%s|%s|%d", firstName, lastName, departmentID)
		if _, taken := seen[key]; taken {
			continue
		}
		seen[key] = struct{}{}

		employees = append(employees, models.Employee{
			FirstName:    firstName,
			LastName:     lastName,
			Age:          minAge + rng.Intn(maxAge-minAge+1),
			Position:     positions[rng.Intn(len(positions))],
			DepartmentID: departmentID,
		})
	}

	return employees
}
