package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models"
)

// DepartmentCache is a single-slot, write-once cache for the department
// list: one JSON file at a fixed path. There is no expiry; the slot is
// only replaced when evicted by hand or found unreadable.
type DepartmentCache struct {
	path string
}

// NewDepartmentCache creates a cache backed by the file at path.
func NewDepartmentCache(path string) *DepartmentCache {
	return &DepartmentCache{path: path}
}

// Load reads the slot. ok is false when the slot is absent or does not
// parse; an unparsable slot is evicted so the next Store starts clean.
func (c *DepartmentCache) Load() (departments []models.Department, ok bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}

	if err := json.Unmarshal(data, &departments); err != nil {
		_ = c.Evict()
		return nil, false
	}

	return departments, true
}

// Store writes the department list into the slot.
func (c *DepartmentCache) Store(departments []models.Department) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.Marshal(departments)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0o644)
}

// Evict removes the slot file. Evicting an absent slot is not an error.
func (c *DepartmentCache) Evict() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
