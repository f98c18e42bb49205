package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/guidocrm/guido-api/internal/core/supabase"
	"github.com/guidocrm/guido-api/internal/shared/logger"
)

// Creatable is implemented by every create-request type.
type Creatable interface {
	Validate() error
}

// Config declares one entity: its backend table, the default ordering for
// scoped listings, and whether its key is numeric (planos) instead of UUID.
type Config struct {
	Table     string
	Name      string // singular name used in messages, e.g. "conta"
	Order     string
	NumericID bool
}

// Resource is the uniform create/read/update/delete surface over one
// backend table. C is the create schema, U the partial-update schema
// (pointer fields), R the response row shape.
type Resource[C Creatable, U any, R any] struct {
	db  *supabase.Client
	cfg Config
}

func New[C Creatable, U any, R any](db *supabase.Client, cfg Config) *Resource[C, U, R] {
	return &Resource[C, U, R]{db: db, cfg: cfg}
}

func (r *Resource[C, U, R]) paramID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if id == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	if r.cfg.NumericID {
		if _, err := strconv.Atoi(id); err != nil {
			return "", fmt.Errorf("invalid %s format", name)
		}
		return id, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid %s format", name)
	}
	return id, nil
}

// parentID always validates as UUID: every parent key in the schema is one.
func parentID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if id == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid %s format", name)
	}
	return id, nil
}

// Create handles POST /{resource}.
func (r *Resource[C, U, R]) Create(c *fiber.Ctx) error {
	var req C
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	row, err := supabase.Insert[R](c.Context(), r.db, r.cfg.Table, req)
	if err != nil {
		logger.Error("failed to create "+r.cfg.Name, err, map[string]interface{}{"table": r.cfg.Table})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to create " + r.cfg.Name,
			"detail": err.Error(),
		})
	}

	return c.JSON(row)
}

// GetByID handles GET /{resource}/{id}.
func (r *Resource[C, U, R]) GetByID(c *fiber.Ctx) error {
	id, err := r.paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	row, err := supabase.SelectOne[R](c.Context(), r.db, r.cfg.Table, supabase.Filter{"id": id})
	if errors.Is(err, supabase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": r.cfg.Name + " not found",
		})
	}
	if err != nil {
		logger.Error("failed to fetch "+r.cfg.Name, err, map[string]interface{}{"table": r.cfg.Table, "id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to fetch " + r.cfg.Name,
			"detail": err.Error(),
		})
	}

	return c.JSON(row)
}

// List handles GET /{resource} without parent scoping.
func (r *Resource[C, U, R]) List(c *fiber.Ctx) error {
	rows, err := supabase.Select[R](c.Context(), r.db, r.cfg.Table, nil, "")
	if err != nil {
		logger.Error("failed to list "+r.cfg.Table, err, map[string]interface{}{"table": r.cfg.Table})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to list " + r.cfg.Table,
			"detail": err.Error(),
		})
	}
	if rows == nil {
		rows = []R{}
	}
	return c.JSON(rows)
}

// ListBy handles GET /{resource}/{parent}/{parent_id}: all rows whose
// column equals the path value, using the resource's default ordering.
func (r *Resource[C, U, R]) ListBy(column, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parentID(c, param)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		rows, err := supabase.Select[R](c.Context(), r.db, r.cfg.Table, supabase.Filter{column: id}, r.cfg.Order)
		if err != nil {
			logger.Error("failed to list "+r.cfg.Table, err, map[string]interface{}{"table": r.cfg.Table, column: id})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":  "failed to list " + r.cfg.Table,
				"detail": err.Error(),
			})
		}
		if rows == nil {
			rows = []R{}
		}
		return c.JSON(rows)
	}
}

// GetOneBy handles scalar lookups by a unique column (id of a parent, a
// documento, an email). When isUUID is false the path value is passed
// through as-is.
func (r *Resource[C, U, R]) GetOneBy(column, param string, isUUID bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		val := c.Params(param)
		if val == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": param + " is required",
			})
		}
		if isUUID {
			if _, err := uuid.Parse(val); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid " + param + " format",
				})
			}
		}

		row, err := supabase.SelectOne[R](c.Context(), r.db, r.cfg.Table, supabase.Filter{column: val})
		if errors.Is(err, supabase.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": r.cfg.Name + " not found",
			})
		}
		if err != nil {
			logger.Error("failed to fetch "+r.cfg.Name, err, map[string]interface{}{"table": r.cfg.Table, column: val})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":  "failed to fetch " + r.cfg.Name,
				"detail": err.Error(),
			})
		}
		return c.JSON(row)
	}
}

// Update handles PUT /{resource}/{id}. Only fields present in the body are
// forwarded; an empty field set is rejected before the backend is contacted.
func (r *Resource[C, U, R]) Update(c *fiber.Ctx) error {
	id, err := r.paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req U
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	patch, err := patchFields[U](c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if len(patch) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "nothing to update",
		})
	}

	row, err := supabase.Update[R](c.Context(), r.db, r.cfg.Table, supabase.Filter{"id": id}, patch)
	if errors.Is(err, supabase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": r.cfg.Name + " not found",
		})
	}
	if err != nil {
		logger.Error("failed to update "+r.cfg.Name, err, map[string]interface{}{"table": r.cfg.Table, "id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to update " + r.cfg.Name,
			"detail": err.Error(),
		})
	}

	return c.JSON(row)
}

// Delete handles DELETE /{resource}/{id}. A missing row and an upstream
// failure are reported separately.
func (r *Resource[C, U, R]) Delete(c *fiber.Ctx) error {
	id, err := r.paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err = supabase.Delete(c.Context(), r.db, r.cfg.Table, supabase.Filter{"id": id})
	if errors.Is(err, supabase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": r.cfg.Name + " not found",
		})
	}
	if err != nil {
		logger.Error("failed to delete "+r.cfg.Name, err, map[string]interface{}{"table": r.cfg.Table, "id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to delete " + r.cfg.Name,
			"detail": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": r.cfg.Name + " deleted successfully",
	})
}

// patchFields reduces the raw body to the update type's columns. Keys the
// caller explicitly set to null stay in the patch, so nullable columns can
// be cleared; absent and unknown keys drop out.
func patchFields[U any](body []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	patch := make(map[string]any, len(raw))
	for _, col := range updatableColumns[U]() {
		if val, ok := raw[col]; ok {
			patch[col] = val
		}
	}
	return patch, nil
}

func updatableColumns[U any]() []string {
	t := reflect.TypeOf(*new(U))
	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			cols = append(cols, name)
		}
	}
	return cols
}
