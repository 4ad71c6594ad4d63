package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

func TestBuildListSelect(t *testing.T) {
	r := NewEmployeeRepository(nil)

	t.Run("defaults to last name order with id tiebreak", func(t *testing.T) {
		sql, args, err := r.buildListSelect(EmployeeQuery{Page: 1, Size: 10}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "FROM employees e")
		require.Contains(t, sql, "JOIN departments d ON e.department_id = d.id")
		require.Contains(t, sql, "ORDER BY e.last_name ASC, e.id ASC")
		require.Contains(t, sql, "LIMIT 10")
		require.Contains(t, sql, "OFFSET 0")
		require.Empty(t, args)
	})

	t.Run("descending sort on whitelisted field", func(t *testing.T) {
		sql, _, err := r.buildListSelect(EmployeeQuery{
			Sort: helpers.SortSpec{Field: "age", Desc: true},
			Page: 1, Size: 10,
		}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "ORDER BY e.age DESC, e.id ASC")
	})

	t.Run("page translates to offset", func(t *testing.T) {
		sql, _, err := r.buildListSelect(EmployeeQuery{Page: 3, Size: 25}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "LIMIT 25")
		require.Contains(t, sql, "OFFSET 50")
	})

	t.Run("department scope binds an equality argument", func(t *testing.T) {
		departmentID := int64(7)
		sql, args, err := r.buildListSelect(EmployeeQuery{
			DepartmentID: &departmentID,
			Page:         1, Size: 10,
		}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "e.department_id = $1")
		require.Equal(t, []interface{}{departmentID}, args)
	})

	t.Run("name fragment matches either name column case-insensitively", func(t *testing.T) {
		sql, args, err := r.buildListSelect(EmployeeQuery{
			NameContains: "ann",
			Page:         1, Size: 10,
		}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "e.first_name ILIKE $1")
		require.Contains(t, sql, "e.last_name ILIKE $2")
		require.Equal(t, []interface{}{"%ann%", "%ann%"}, args)
	})

	t.Run("scope and fragment combine with AND", func(t *testing.T) {
		departmentID := int64(2)
		sql, args, err := r.buildListSelect(EmployeeQuery{
			DepartmentID: &departmentID,
			NameContains: "lee",
			Page:         1, Size: 10,
		}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "e.department_id = $1")
		require.Contains(t, sql, "ILIKE $2")
		require.Contains(t, sql, "ILIKE $3")
		require.Len(t, args, 3)
	})

	t.Run("surrounding whitespace on the fragment is ignored", func(t *testing.T) {
		_, args, err := r.buildListSelect(EmployeeQuery{
			NameContains: "  polly  ",
			Page:         1, Size: 10,
		}).ToSql()
		require.NoError(t, err)
		require.Equal(t, []interface{}{"%polly%", "%polly%"}, args)
	})
}

func TestBuildListCount(t *testing.T) {
	r := NewEmployeeRepository(nil)

	sql, args, err := r.buildListCount(EmployeeQuery{NameContains: "kim", Page: 4, Size: 10}).ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "SELECT COUNT(*)")
	require.NotContains(t, sql, "ORDER BY")
	require.NotContains(t, sql, "LIMIT")
	require.Equal(t, []interface{}{"%kim%", "%kim%"}, args)
}

func TestSortColumn(t *testing.T) {
	column, direction := sortColumn(helpers.SortSpec{})
	require.Equal(t, "e.last_name", column)
	require.Equal(t, "ASC", direction)

	column, direction = sortColumn(helpers.SortSpec{Field: "position", Desc: true})
	require.Equal(t, "e.position", column)
	require.Equal(t, "DESC", direction)

	column, _ = sortColumn(helpers.SortSpec{Field: "not_a_column"})
	require.Equal(t, "e.last_name", column)
}
