package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	employeeController *controllers.EmployeeController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.GET("/find/:name/employees", employeeController.GetDepartmentEmployees)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.GetAllEmployees)
		employees.GET("/find/:text", employeeController.SearchEmployees)
		employees.POST("", employeeController.CreateEmployee)
	}
}
