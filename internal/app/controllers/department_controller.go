package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/services"
	"github.com/sarah-brisson/keyhook-code-test/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments retrieves all departments
// @Summary List departments
// @Description Retrieves all departments, optionally with their employees embedded
// @Tags departments
// @Produce json
// @Param include query string false "Set to 'employees' to embed each department's members"
// @Success 200 {object} dto.Document{data=[]models.Department} "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorDocument "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	includeEmployees := ctx.Query("include") == "employees"

	departments, err := c.departmentService.GetAllDepartments(ctx, includeEmployees)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Document{Data: departments})
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Description Retrieves a specific department by its ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.Document{data=models.Department} "Department retrieved successfully"
// @Failure 400 {object} dto.ErrorDocument "Invalid department ID"
// @Failure 404 {object} dto.ErrorDocument "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorDocument(http.StatusBadRequest, "Invalid Department ID").
				WithDetail("Department ID must be a valid number"))
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Document{Data: department})
}
