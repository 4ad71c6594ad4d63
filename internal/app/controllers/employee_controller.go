package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/services"
	"github.com/sarah-brisson/keyhook-code-test/internal/middleware"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// GetAllEmployees retrieves one page of the employee collection
// @Summary List employees
// @Description Retrieves employees with sorting and pagination, each embedding its department
// @Tags employees
// @Produce json
// @Param sort query string false "Sort field, prefix with '-' for descending (id, first_name, last_name, age, position)"
// @Param page[number] query int false "1-based page number (default 1)"
// @Param page[size] query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListDocument{data=[]models.Employee} "Employees retrieved successfully"
// @Failure 400 {object} dto.ErrorDocument "Invalid list parameters"
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, helpers.DefaultPageSize, repositories.EmployeeSortFields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.employeeService.ListEmployees(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListDocument{Data: page.Employees, Meta: page.Meta})
}

// SearchEmployees retrieves employees whose name contains a text fragment
// @Summary Search employees by name
// @Description Case-insensitive substring search against first and last names across the whole collection
// @Tags employees
// @Produce json
// @Param text path string true "Name fragment"
// @Param sort query string false "Sort field, prefix with '-' for descending"
// @Param page[number] query int false "1-based page number (default 1)"
// @Param page[size] query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListDocument{data=[]models.Employee} "Matching employees"
// @Failure 404 {object} dto.ErrorDocument "No employees found"
// @Router /employees/find/{text} [get]
func (c *EmployeeController) SearchEmployees(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, helpers.DefaultPageSize, repositories.EmployeeSortFields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.employeeService.SearchEmployees(ctx, ctx.Param("text"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListDocument{Data: page.Employees, Meta: page.Meta})
}

// GetDepartmentEmployees retrieves one page of a department's members
// @Summary List a department's employees
// @Description Scopes the collection to a department found by exact name, then optionally filters by employee name
// @Tags departments
// @Produce json
// @Param name path string true "Department name (exact match)"
// @Param employee_name query string false "Employee name fragment"
// @Param sort query string false "Sort field, prefix with '-' for descending"
// @Param page[number] query int false "1-based page number (default 1)"
// @Param page[size] query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListDocument{data=[]models.Employee} "Department members"
// @Failure 404 {object} dto.ErrorDocument "Department not found"
// @Router /departments/find/{name}/employees [get]
func (c *EmployeeController) GetDepartmentEmployees(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, helpers.DefaultPageSize, repositories.EmployeeSortFields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.employeeService.ListDepartmentEmployees(ctx, ctx.Param("name"), ctx.Query("employee_name"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListDocument{Data: page.Employees, Meta: page.Meta})
}

// CreateEmployee creates a new employee
// @Summary Create an employee
// @Description Validates required fields, rejects duplicates within a department, returns the created record with its department embedded
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee attributes"
// @Success 201 {object} dto.Document{data=models.Employee} "Employee created successfully"
// @Failure 409 {object} dto.ErrorDocument "Duplicate employee in department"
// @Failure 422 {object} dto.ErrorDocument "Validation failure with per-field messages"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var bindingErrs validator.ValidationErrors
		if errors.As(err, &bindingErrs) {
			ctx.JSON(http.StatusUnprocessableEntity,
				dto.NewValidationErrorDocument(http.StatusUnprocessableEntity, "Validation Failed", bindingFields(bindingErrs)))
			return
		}
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorDocument(http.StatusBadRequest, "Invalid Request Body").
				WithDetail(err.Error()))
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Document{Data: employee})
}

// bindingFields converts binding failures into per-field messages keyed by
// the wire attribute names.
func bindingFields(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		name := attributeName(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "gt":
			fields[name] = name + " must be greater than " + fe.Param()
		default:
			fields[name] = name + " is invalid"
		}
	}
	return fields
}

// attributeName maps struct field names onto their JSON attribute names.
func attributeName(field string) string {
	switch field {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "Age":
		return "age"
	case "Position":
		return "position"
	case "DepartmentID":
		return "department_id"
	}
	return field
}
