package integration

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/guidocrm/guido-api/internal/shared/logger"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// CallExternalAPI godoc
// @Summary Forward a payload to the external API
// @Description Demonstration pattern: posts an arbitrary JSON payload to the configured third-party base URL
// @Tags Integration
// @Accept json
// @Produce json
// @Param request body integration.Request true "Payload"
// @Success 200 {object} integration.Response
// @Failure 503 {object} map[string]string
// @Router /api/v1/integration/external-api [post]
func (h *Handler) CallExternalAPI(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Method == "" {
		req.Method = fiber.MethodPost
	}

	data, err := h.client.ForwardData(c.Context(), req)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return c.Status(statusErr.StatusCode).JSON(fiber.Map{
				"error": "external API error: " + statusErr.Body,
			})
		}
		logger.Error("external API call failed", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "external API connection error: " + err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Data:    data,
		Message: "data retrieved successfully",
	})
}

// CheckExternalHealth godoc
// @Summary External API health
// @Description Reports reachability of the configured external API
// @Tags Integration
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/integration/health-external [get]
func (h *Handler) CheckExternalHealth(c *fiber.Ctx) error {
	health, err := h.client.CheckHealth(c.Context())
	if err != nil {
		return c.JSON(fiber.Map{
			"external_api_status": "error",
			"error":               err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"external_api_status": health.Status,
		"response_time":       health.ResponseTime.Seconds(),
		"status_code":         health.StatusCode,
	})
}
