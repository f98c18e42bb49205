package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidocrm/guido-api/internal/core/supabase"
	"github.com/guidocrm/guido-api/internal/modules/crm/crmtest"
	"github.com/guidocrm/guido-api/internal/modules/crm/handlers"
	"github.com/guidocrm/guido-api/internal/modules/crm/models"
)

func newBackend(t *testing.T) (*supabase.Client, *crmtest.Server) {
	t.Helper()

	backend := crmtest.New()
	t.Cleanup(backend.Close)

	db, err := supabase.NewClient(backend.URL(), "test-key")
	require.NoError(t, err)
	return db, backend
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func doPut(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/health", handlers.NewHealthHandler("1.0.0").GetHealth)

	code, raw := getJSON(t, app, "/health")
	require.Equal(t, http.StatusOK, code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestDossierUpsertKeepsOneRowPerClient(t *testing.T) {
	db, backend := newBackend(t)

	app := fiber.New()
	app.Post("/dossies-ia", handlers.NewDossierHandler(db).CreateOrUpdate)

	clienteID := uuid.NewString()

	code, raw := postJSON(t, app, "/dossies-ia", map[string]string{
		"cliente_id":    clienteID,
		"resumo_gerado": "Procura apartamento de 2 quartos",
	})
	require.Equal(t, http.StatusOK, code, string(raw))

	var first models.Dossier
	require.NoError(t, json.Unmarshal(raw, &first))
	require.NotEmpty(t, first.ID)

	code, raw = postJSON(t, app, "/dossies-ia", map[string]string{
		"cliente_id":       clienteID,
		"resumo_gerado":    "Fechou proposta no apartamento 402",
		"sentimento_geral": "POSITIVO",
	})
	require.Equal(t, http.StatusOK, code, string(raw))

	var second models.Dossier
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.ResumoGerado)
	assert.Equal(t, "Fechou proposta no apartamento 402", *second.ResumoGerado)

	rows := backend.Rows("dossies_ia")
	require.Len(t, rows, 1)
	assert.Equal(t, "Fechou proposta no apartamento 402", rows[0]["resumo_gerado"])
	assert.Equal(t, "POSITIVO", rows[0]["sentimento_geral"])
}

func TestDossierUpsertRejectsMissingClient(t *testing.T) {
	db, backend := newBackend(t)

	app := fiber.New()
	app.Post("/dossies-ia", handlers.NewDossierHandler(db).CreateOrUpdate)

	code, raw := postJSON(t, app, "/dossies-ia", map[string]string{
		"resumo_gerado": "sem dono",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "cliente_id is required")
	assert.Equal(t, 0, backend.RequestCount())
}

func TestActivePlansPassthrough(t *testing.T) {
	db, backend := newBackend(t)
	backend.Seed("planos",
		map[string]any{"id": 1, "nome_plano": "Starter", "preco": 49.9, "is_ativo": true, "limite_corretores": 1},
		map[string]any{"id": 2, "nome_plano": "Legado", "preco": 19.9, "is_ativo": false},
		map[string]any{"id": 3, "nome_plano": "Pro", "preco": 149.9, "is_ativo": true, "recursos": map[string]any{"dossie_ia": true}},
	)

	app := fiber.New()
	app.Get("/planos", handlers.NewPlanHandler(db).GetActivePlans)

	code, raw := getJSON(t, app, "/planos")
	require.Equal(t, http.StatusOK, code)

	var plans []map[string]any
	require.NoError(t, json.Unmarshal(raw, &plans))
	require.Len(t, plans, 2)
	names := []string{plans[0]["nome_plano"].(string), plans[1]["nome_plano"].(string)}
	assert.ElementsMatch(t, []string{"Starter", "Pro"}, names)

	// Unknown columns survive the round trip untouched.
	for _, p := range plans {
		if p["nome_plano"] == "Pro" {
			recursos, ok := p["recursos"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, true, recursos["dossie_ia"])
		}
	}
}

func TestActivePlansEmptyIsJSONArray(t *testing.T) {
	db, _ := newBackend(t)

	app := fiber.New()
	app.Get("/planos", handlers.NewPlanHandler(db).GetActivePlans)

	code, raw := getJSON(t, app, "/planos")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)))
}
