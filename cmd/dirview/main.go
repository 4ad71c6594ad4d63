package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sarah-brisson/keyhook-code-test/internal/client"
	"github.com/sarah-brisson/keyhook-code-test/internal/client/table"
	"github.com/sarah-brisson/keyhook-code-test/internal/config"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/helpers"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
)

// dirview renders one page of the employee directory as a text table.

func main() {
	var (
		department = flag.String("department", "", "restrict to one department by exact name")
		filter     = flag.String("filter", "", "employee name fragment to filter by")
		sortSpec   = flag.String("sort", "", "sort field, prefix with '-' for descending")
		page       = flag.Int("page", 1, "1-based page number")
		size       = flag.Int("size", 0, "page size (defaults to the configured table page size)")
		refresh    = flag.Bool("refresh", false, "evict the department cache before fetching")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if *size <= 0 {
		*size = cfg.Client.PageSize
	}

	sort, err := helpers.ParseSortSpec(*sortSpec, []string{"id", "first_name", "last_name", "age", "position"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	api := client.New(cfg.Client.BaseURL,
		client.WithDepartmentCache(cfg.Client.CachePath),
		client.WithLogger(logger.WithField("component", "dirview")),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *refresh {
		if err := api.EvictDepartments(); err != nil {
			logger.Warn().Err(err).Msg("Failed to evict department cache")
		}
	}

	// Warm the department cache the way the table's first render does.
	if _, err := api.Departments(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error fetching departments:", err)
		os.Exit(1)
	}

	var tokens client.TokenSource
	model := table.New()

	opts := client.ListOptions{Page: *page, Size: *size, Sort: sort}

	token := tokens.Next()
	result, err := fetch(ctx, api, *department, *filter, opts)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			for _, e := range apiErr.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", e.Status, e.Title)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error fetching employees:", err)
		os.Exit(1)
	}

	// A response that lost the race against a newer request is dropped.
	if !tokens.Accept(token) {
		return
	}

	model.SetRows(table.RowsFromEmployees(result.Employees))
	model.SetMeta(result.Meta.CurrentPage, result.Meta.TotalPages)
	if err := model.Render(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error rendering table:", err)
		os.Exit(1)
	}
}

func fetch(ctx context.Context, api *client.Client, department, filter string, opts client.ListOptions) (*client.EmployeePage, error) {
	switch {
	case department != "":
		return api.DepartmentEmployees(ctx, department, filter, opts)
	case filter != "":
		return api.SearchEmployees(ctx, filter, opts)
	default:
		return api.Employees(ctx, opts)
	}
}
