package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// SortSpec is a parsed sort parameter: a field name and a direction.
type SortSpec struct {
	Field string
	Desc  bool
}

// IsZero reports whether no sort was requested.
func (s SortSpec) IsZero() bool {
	return s.Field == ""
}

// Encode renders the spec back to wire form: "field" or "-field".
func (s SortSpec) Encode() string {
	if s.Field == "" {
		return ""
	}
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// ListParams holds the validated list parameters of a request.
type ListParams struct {
	Page int
	Size int
	Sort SortSpec
}

// ParseError reports a list parameter that failed validation.
type ParseError struct {
	Param   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s parameter: %s", e.Param, e.Message)
}

// ParseSortSpec parses a raw sort parameter. A leading '-' selects
// descending order on the remainder. Fields outside the allowed set are
// rejected so the value can never reach an ORDER BY clause unchecked.
func ParseSortSpec(raw string, allowed []string) (SortSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortSpec{}, nil
	}

	spec := SortSpec{Field: raw}
	if strings.HasPrefix(raw, "-") {
		spec.Desc = true
		spec.Field = raw[1:]
	}

	for _, field := range allowed {
		if spec.Field == field {
			return spec, nil
		}
	}
	return SortSpec{}, &ParseError{
		Param:   "sort",
		Message: fmt.Sprintf("unknown sort field %q", spec.Field),
	}
}

// ParseListParams extracts sort and page parameters from the request.
// Page number and size tolerate missing or non-numeric input by falling
// back to defaults; the sort field is validated against the allowed set.
func ParseListParams(c *gin.Context, defaultSize int, allowedSort []string) (ListParams, error) {
	params := ListParams{
		Page: DefaultPage,
		Size: defaultSize,
	}
	if params.Size <= 0 || params.Size > MaxPageSize {
		params.Size = DefaultPageSize
	}

	if raw := c.Query("page[number]"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			params.Page = page
		}
	}
	if raw := c.Query("page[size]"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size >= 1 {
			if size > MaxPageSize {
				size = MaxPageSize
			}
			params.Size = size
		}
	}

	sort, err := ParseSortSpec(c.Query("sort"), allowedSort)
	if err != nil {
		return ListParams{}, err
	}
	params.Sort = sort

	return params, nil
}
