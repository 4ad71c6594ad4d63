package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the wire error contract. Every
// failure body has the {"errors":[{status,title,...}]} shape.
func HandleAPIError(c *gin.Context, err error) {
	var parseErr *helpers.ParseError

	switch {
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorDocument(http.StatusNotFound, "Department Not Found"))

	case errors.Is(err, apperrors.ErrNoEmployeesFound):
		c.JSON(http.StatusNotFound, dto.NewErrorDocument(http.StatusNotFound, "No Employees Found"))

	case errors.Is(err, apperrors.ErrEmployeeNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorDocument(http.StatusNotFound, "Not Found"))

	case errors.Is(err, apperrors.ErrDuplicateEmployee), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict,
			dto.NewErrorDocument(http.StatusConflict, "Employee Already Exists").
				WithDetail("An employee with the same first and last name already exists in this department."))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewValidationErrorDocument(http.StatusUnprocessableEntity, "Validation Failed", apperrors.FieldsOf(err)))

	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorDocument(http.StatusBadRequest, "Invalid Request Parameter").
				WithDetail(parseErr.Error()))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorDocument(http.StatusBadRequest, "Invalid Request").
				WithDetail(err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorDocument(http.StatusInternalServerError, "Internal Server Error"))
	}
}
