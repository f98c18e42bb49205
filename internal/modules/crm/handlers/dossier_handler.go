package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guidocrm/guido-api/internal/core/supabase"
	"github.com/guidocrm/guido-api/internal/modules/crm/models"
	"github.com/guidocrm/guido-api/internal/shared/logger"
)

const dossierTable = "dossies_ia"

// DossierHandler carries the one operation the generic resource cannot
// express: dossier creation is an upsert keyed on cliente_id.
type DossierHandler struct {
	db *supabase.Client
}

func NewDossierHandler(db *supabase.Client) *DossierHandler {
	return &DossierHandler{db: db}
}

// CreateOrUpdate godoc
// @Summary Create or update a client dossier
// @Description Upserts the AI dossier for a client: if one exists for the cliente_id it is updated, otherwise a new row is inserted
// @Tags Dossiers
// @Accept json
// @Produce json
// @Param dossier body models.DossierCreate true "Dossier payload"
// @Success 200 {object} models.Dossier
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/guido/dossies-ia [post]
func (h *DossierHandler) CreateOrUpdate(c *fiber.Ctx) error {
	var req models.DossierCreate
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

	// Existence check, then update-or-insert. The two calls are not
	// atomic: concurrent upserts for the same client can race.
	filter := supabase.Filter{"cliente_id": req.ClienteID}
	existing, err := supabase.Select[models.Dossier](c.Context(), h.db, dossierTable, filter, "")
	if err != nil {
		logger.Error("dossier existence check failed", err, map[string]interface{}{"cliente_id": req.ClienteID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to create dossier",
			"detail": err.Error(),
		})
	}

	var row models.Dossier
	if len(existing) > 0 {
		row, err = supabase.Update[models.Dossier](c.Context(), h.db, dossierTable, filter, req)
	} else {
		row, err = supabase.Insert[models.Dossier](c.Context(), h.db, dossierTable, req)
	}
	if err != nil {
		logger.Error("dossier upsert failed", err, map[string]interface{}{"cliente_id": req.ClienteID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to create dossier",
			"detail": err.Error(),
		})
	}

	return c.JSON(row)
}
