package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/guidocrm/guido-api/internal/core/supabase"
	"github.com/guidocrm/guido-api/internal/shared/logger"
)

type PlanHandler struct {
	db *supabase.Client
}

func NewPlanHandler(db *supabase.Client) *PlanHandler {
	return &PlanHandler{db: db}
}

// GetActivePlans godoc
// @Summary List active plans
// @Description Returns every plan with is_ativo=true, passed through as stored
// @Tags Plans
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/v1/guido/planos [get]
func (h *PlanHandler) GetActivePlans(c *fiber.Ctx) error {
	// Raw passthrough: active plans go out exactly as the backend returns them.
	rows, err := supabase.Select[json.RawMessage](c.Context(), h.db, "planos", supabase.Filter{"is_ativo": "true"}, "")
	if err != nil {
		logger.Error("failed to list planos", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to list planos",
			"detail": err.Error(),
		})
	}
	if rows == nil {
		rows = []json.RawMessage{}
	}
	return c.JSON(rows)
}
