package dto

import (
	"sort"
	"strconv"
)

// ErrorObject is a single JSON:API style error entry.
type ErrorObject struct {
	Status string       `json:"status"`
	Title  string       `json:"title"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points at the request field an error refers to.
type ErrorSource struct {
	Pointer string `json:"pointer"`
}

// ErrorDocument is the body returned for every failed request:
// {"errors":[{"status":"404","title":"Department Not Found"}]}
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// NewErrorDocument creates an error document with a single error entry.
func NewErrorDocument(status int, title string) *ErrorDocument {
	return &ErrorDocument{
		Errors: []ErrorObject{{
			Status: strconv.Itoa(status),
			Title:  title,
		}},
	}
}

// WithDetail sets the detail of the first error entry.
func (d *ErrorDocument) WithDetail(detail string) *ErrorDocument {
	if len(d.Errors) > 0 {
		d.Errors[0].Detail = detail
	}
	return d
}

// NewValidationErrorDocument builds a 422 document with one entry per
// offending field, each pointing at its attribute.
func NewValidationErrorDocument(status int, title string, fields map[string]string) *ErrorDocument {
	doc := &ErrorDocument{}
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	for _, field := range names {
		doc.Errors = append(doc.Errors, ErrorObject{
			Status: strconv.Itoa(status),
			Title:  title,
			Detail: fields[field],
			Source: &ErrorSource{Pointer: "/data/attributes/" + field},
		})
	}
	if len(doc.Errors) == 0 {
		doc.Errors = []ErrorObject{{Status: strconv.Itoa(status), Title: title}}
	}
	return doc
}
