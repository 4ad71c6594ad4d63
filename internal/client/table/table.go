package table

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
)

// Column identifies one of the fixed table columns.
type Column int

const (
	ColFirstName Column = iota
	ColLastName
	ColAge
	ColPosition
	ColDepartment
)

// Direction is the sort state of the active column.
type Direction int

const (
	DirNone Direction = iota
	DirAscending
	DirDescending
)

var headers = []string{"First Name", "Last Name", "Age", "Position", "Department"}

// sortFields maps columns onto API sort fields. The department column is
// derived from the embedded relationship and is not sortable server-side.
var sortFields = map[Column]string{
	ColFirstName: "first_name",
	ColLastName:  "last_name",
	ColAge:       "age",
	ColPosition:  "position",
}

// Row is one rendered table line.
type Row struct {
	FirstName  string
	LastName   string
	Age        int
	Position   string
	Department string
}

// RowsFromEmployees flattens employee records, pulling the department
// name out of the embedded relationship.
func RowsFromEmployees(employees []models.Employee) []Row {
	rows := make([]Row, len(employees))
	for i, employee := range employees {
		rows[i] = Row{
			FirstName: employee.FirstName,
			LastName:  employee.LastName,
			Age:       employee.Age,
			Position:  employee.Position,
		}
		if employee.Department != nil {
			rows[i].Department = employee.Department.Name
		}
	}
	return rows
}

// Model is the presentation state of the employee table. It owns no
// server state: sorting and paging intents are emitted upward through
// the OnSort and OnPage callbacks and the owner feeds results back in
// with SetRows and SetMeta.
type Model struct {
	rows       []Row
	sortColumn Column
	sortDir    Direction
	page       int
	totalPages int

	onSort func(sortSpec string)
	onPage func(page int)
}

// New creates an empty table model on page 1 with no active sort.
func New() *Model {
	return &Model{page: 1}
}

// OnSort registers the sort-change callback. It receives the encoded
// sort spec: "field", "-field", or "" when sorting is cleared.
func (m *Model) OnSort(fn func(sortSpec string)) {
	m.onSort = fn
}

// OnPage registers the page-change callback with the 1-based page.
func (m *Model) OnPage(fn func(page int)) {
	m.onPage = fn
}

// SetRows replaces the visible rows.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
}

// SetMeta records the pagination meta of the current result.
func (m *Model) SetMeta(currentPage, totalPages int) {
	if currentPage < 1 {
		currentPage = 1
	}
	m.page = currentPage
	m.totalPages = totalPages
}

// SortSpec returns the encoded sort spec of the current state.
func (m *Model) SortSpec() string {
	field, ok := sortFields[m.sortColumn]
	if !ok || m.sortDir == DirNone {
		return ""
	}
	if m.sortDir == DirDescending {
		return "-" + field
	}
	return field
}

// Page returns the current 1-based page.
func (m *Model) Page() int {
	return m.page
}

// Toggle cycles the sort state of a column: ascending, then descending,
// then none. Activating a different column starts it ascending. Only one
// column sorts at a time. The resulting spec is emitted through OnSort.
func (m *Model) Toggle(col Column) {
	if _, sortable := sortFields[col]; !sortable {
		return
	}

	if col != m.sortColumn || m.sortDir == DirNone {
		m.sortColumn = col
		m.sortDir = DirAscending
	} else if m.sortDir == DirAscending {
		m.sortDir = DirDescending
	} else {
		m.sortDir = DirNone
	}

	if m.onSort != nil {
		m.onSort(m.SortSpec())
	}
}

// NextPage advances one page, bounded by the last known total.
func (m *Model) NextPage() {
	if m.totalPages > 0 && m.page >= m.totalPages {
		return
	}
	m.page++
	if m.onPage != nil {
		m.onPage(m.page)
	}
}

// PrevPage goes back one page, stopping at the first.
func (m *Model) PrevPage() {
	if m.page <= 1 {
		return
	}
	m.page--
	if m.onPage != nil {
		m.onPage(m.page)
	}
}

// Render writes the table with aligned columns, a sort marker on the
// active column and a page footer.
func (m *Model) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, header := range headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, header+m.marker(Column(i)))
	}
	fmt.Fprintln(tw)

	for _, row := range m.rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.FirstName, row.LastName, strconv.Itoa(row.Age), row.Position, row.Department)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Page %d of %d\n", m.page, m.totalPages)
	return err
}

func (m *Model) marker(col Column) string {
	if col != m.sortColumn {
		return ""
	}
	switch m.sortDir {
	case DirAscending:
		return " ^"
	case DirDescending:
		return " v"
	}
	return ""
}
