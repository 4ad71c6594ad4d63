package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
)

// DefaultPageSize is the page length the directory table asks for.
const DefaultPageSize = 20

// Client is the data layer over the directory API: one method per
// endpoint, plus a durable single-slot cache for the department list.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *DepartmentCache
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDepartmentCache enables the department list cache at the given slot path
func WithDepartmentCache(path string) Option {
	return func(c *Client) {
		c.cache = NewDepartmentCache(path)
	}
}

// WithLogger sets the client logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a directory API client. baseURL is the server root, without
// the /api/v1 prefix.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListOptions parameterize every listing call.
type ListOptions struct {
	Page int
	Size int
	Sort helpers.SortSpec
}

func (o ListOptions) query() url.Values {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page[number]", strconv.Itoa(o.Page))
	}
	if o.Size > 0 {
		values.Set("page[size]", strconv.Itoa(o.Size))
	}
	if spec := o.Sort.Encode(); spec != "" {
		values.Set("sort", spec)
	}
	return values
}

// EmployeePage is one page of employees with its pagination meta.
type EmployeePage struct {
	Employees []models.Employee `json:"data"`
	Meta      dto.ListMeta      `json:"meta"`
}

// APIError is a failed API call, carrying the decoded error body.
type APIError struct {
	StatusCode int
	Errors     []dto.ErrorObject
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Errors[0].Title)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Departments returns the department list. The first call fetches from
// the API and fills the cache slot; later calls read the slot. A slot
// that fails to parse is evicted and refetched.
func (c *Client) Departments(ctx context.Context) ([]models.Department, error) {
	if c.cache != nil {
		if departments, ok := c.cache.Load(); ok {
			c.logger.Debug().Int("count", len(departments)).Msg("Departments served from cache")
			return departments, nil
		}
	}

	var doc struct {
		Data []models.Department `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/departments", nil, &doc); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Store(doc.Data); err != nil {
			// A failed slot write only costs a refetch next time.
			c.logger.Warn().Err(err).Msg("Failed to store department cache slot")
		}
	}

	return doc.Data, nil
}

// EvictDepartments clears the department cache slot.
func (c *Client) EvictDepartments() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Evict()
}

// DepartmentByID fetches one department.
func (c *Client) DepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	var doc struct {
		Data models.Department `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/departments/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc.Data, nil
}

// Employees fetches one page of the whole employee collection.
func (c *Client) Employees(ctx context.Context, opts ListOptions) (*EmployeePage, error) {
	var page EmployeePage
	if err := c.get(ctx, "/api/v1/employees", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchEmployees fetches employees whose name contains text.
func (c *Client) SearchEmployees(ctx context.Context, text string, opts ListOptions) (*EmployeePage, error) {
	var page EmployeePage
	path := "/api/v1/employees/find/" + url.PathEscape(text)
	if err := c.get(ctx, path, opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DepartmentEmployees fetches one page of a department's members, found
// by exact department name, optionally narrowed by an employee name
// fragment.
func (c *Client) DepartmentEmployees(ctx context.Context, departmentName, employeeName string, opts ListOptions) (*EmployeePage, error) {
	values := opts.query()
	if employeeName != "" {
		values.Set("employee_name", employeeName)
	}

	var page EmployeePage
	path := "/api/v1/departments/find/" + url.PathEscape(departmentName) + "/employees"
	if err := c.get(ctx, path, values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateEmployee creates an employee and returns the stored record with
// its department embedded.
func (c *Client) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode employee: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/employees", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var doc struct {
		Data models.Employee `json:"data"`
	}
	if err := c.do(httpReq, &doc); err != nil {
		return nil, err
	}
	return &doc.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var doc dto.ErrorDocument
		if err := json.Unmarshal(body, &doc); err == nil {
			apiErr.Errors = doc.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
