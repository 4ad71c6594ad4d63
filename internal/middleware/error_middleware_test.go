package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/apperrors"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

func handle(t *testing.T, err error) (int, dto.ErrorDocument) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var doc dto.ErrorDocument
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
	require.NotEmpty(t, doc.Errors)
	return recorder.Code, doc
}

func TestHandleAPIError(t *testing.T) {
	t.Run("department not found", func(t *testing.T) {
		status, doc := handle(t, apperrors.ErrDepartmentNotFound)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "404", doc.Errors[0].Status)
		require.Equal(t, "Department Not Found", doc.Errors[0].Title)
	})

	t.Run("no employees found", func(t *testing.T) {
		status, doc := handle(t, apperrors.ErrNoEmployeesFound)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "No Employees Found", doc.Errors[0].Title)
	})

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		status, _ := handle(t, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound, "resolving scope"))
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("duplicate employee", func(t *testing.T) {
		status, doc := handle(t, apperrors.ErrDuplicateEmployee)
		require.Equal(t, http.StatusConflict, status)
		require.Equal(t, "Employee Already Exists", doc.Errors[0].Title)
		require.NotEmpty(t, doc.Errors[0].Detail)
	})

	t.Run("validation failure carries one entry per field", func(t *testing.T) {
		status, doc := handle(t, apperrors.NewValidationError(map[string]string{
			"age":      "age must be a positive integer",
			"position": "position cannot be blank",
		}))
		require.Equal(t, http.StatusUnprocessableEntity, status)
		require.Len(t, doc.Errors, 2)
		require.Equal(t, "/data/attributes/age", doc.Errors[0].Source.Pointer)
		require.Equal(t, "/data/attributes/position", doc.Errors[1].Source.Pointer)
	})

	t.Run("parameter parse failure", func(t *testing.T) {
		status, doc := handle(t, &helpers.ParseError{Param: "sort", Message: "unknown sort field"})
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid Request Parameter", doc.Errors[0].Title)
	})

	t.Run("anything else is an internal error", func(t *testing.T) {
		status, doc := handle(t, errors.New("connection refused"))
		require.Equal(t, http.StatusInternalServerError, status)
		require.Equal(t, "Internal Server Error", doc.Errors[0].Title)
	})
}
