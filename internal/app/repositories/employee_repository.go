package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
)

// EmployeeSortFields lists the sort fields accepted on employee listings.
var EmployeeSortFields = []string{"id", "first_name", "last_name", "age", "position"}

// EmployeeQuery describes one employee listing: an optional department
// scope, an optional name fragment, a sort spec and a page spec.
type EmployeeQuery struct {
	DepartmentID *int64
	NameContains string
	Sort         helpers.SortSpec
	Page         int
	Size         int
}

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// employeeColumns are selected for every listing, with the owning
// department joined in so responses can embed it without a second query.
var employeeColumns = []string{
	"e.id", "e.first_name", "e.last_name", "e.age", "e.position",
	"e.department_id", "d.name AS department_name",
}

// listWhere translates the scope and text filter of a query into a
// squirrel conjunction. Scoping narrows first; the name fragment then
// matches case-insensitively against either name column.
func listWhere(q EmployeeQuery) squirrel.And {
	where := squirrel.And{}
	if q.DepartmentID != nil {
		where = append(where, squirrel.Eq{"e.department_id": *q.DepartmentID})
	}
	if text := strings.TrimSpace(q.NameContains); text != "" {
		pattern := "%" + text + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"e.first_name": pattern},
			squirrel.ILike{"e.last_name": pattern},
		})
	}
	return where
}

// buildListSelect builds the page query: filtered, ordered and sliced.
func (r *EmployeeRepository) buildListSelect(q EmployeeQuery) squirrel.SelectBuilder {
	offset, limit := helpers.OffsetLimit(q.Page, q.Size)

	column, direction := sortColumn(q.Sort)
	return r.sb.Select(employeeColumns...).
		From("employees e").
		Join("departments d ON e.department_id = d.id").
		Where(listWhere(q)).
		OrderBy(fmt.Sprintf("%s %s", column, direction), "e.id ASC").
		Limit(uint64(limit)).
		Offset(offset)
}

// buildListCount builds the matching count query, without order or slicing.
func (r *EmployeeRepository) buildListCount(q EmployeeQuery) squirrel.SelectBuilder {
	return r.sb.Select("COUNT(*)").
		From("employees e").
		Join("departments d ON e.department_id = d.id").
		Where(listWhere(q))
}

// List retrieves one page of employees matching the query along with the
// total number of matches across all pages.
func (r *EmployeeRepository) List(ctx context.Context, q EmployeeQuery) ([]models.Employee, int64, error) {
	countSql, countArgs, err := r.buildListCount(q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build employee count query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing employee count query")
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if totalItems == 0 {
		return []models.Employee{}, 0, nil
	}

	querySql, queryArgs, err := r.buildListSelect(q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build employee list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing employee list query")
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var employee models.Employee
		var departmentName string
		if err := rows.Scan(
			&employee.ID, &employee.FirstName, &employee.LastName,
			&employee.Age, &employee.Position,
			&employee.DepartmentID, &departmentName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employee.Department = &models.Department{
			ID:   employee.DepartmentID,
			Name: departmentName,
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, totalItems, nil
}

// ExistsByIdentity checks whether a department already has an employee
// with the given first and last name.
func (r *EmployeeRepository) ExistsByIdentity(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE first_name = $1 AND last_name = $2 AND department_id = $3
		)`,
		firstName, lastName, departmentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking employee existence: %w", err)
	}

	return exists, nil
}

// Create inserts an employee and fills in its assigned ID
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := r.sb.Insert("employees").
		Columns("first_name", "last_name", "age", "position", "department_id").
		Values(employee.FirstName, employee.LastName, employee.Age, employee.Position, employee.DepartmentID).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build employee insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&employee.ID); err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// CountAll returns the number of employees
func (r *EmployeeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}

// sortColumn maps a sort spec to a concrete column and direction. Only
// whitelisted fields are mapped; anything else falls back to the default
// last_name ascending order, which also applies when no sort is given.
func sortColumn(sort helpers.SortSpec) (column, direction string) {
	column = "e.last_name"
	switch sort.Field {
	case "id":
		column = "e.id"
	case "first_name":
		column = "e.first_name"
	case "last_name":
		column = "e.last_name"
	case "age":
		column = "e.age"
	case "position":
		column = "e.position"
	}

	direction = "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return column, direction
}
