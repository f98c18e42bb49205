package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidocrm/guido-api/internal/modules/crm/handlers"
	"github.com/guidocrm/guido-api/internal/modules/crm/models"
	"github.com/guidocrm/guido-api/internal/modules/crm/resource"
)

// TestFullCRMFlow walks the whole chain one tenant goes through: account,
// broker, client, conversation, messages, reminder and dossier.
func TestFullCRMFlow(t *testing.T) {
	db, _ := newBackend(t)

	contas := resource.New[models.AccountCreate, models.AccountUpdate, models.Account](db, resource.Config{Table: "contas", Name: "conta"})
	corretores := resource.New[models.BrokerCreate, models.BrokerUpdate, models.Broker](db, resource.Config{Table: "corretores", Name: "corretor"})
	clientes := resource.New[models.ClientCreate, models.ClientUpdate, models.Client](db, resource.Config{Table: "clientes", Name: "cliente"})
	conversas := resource.New[models.ConversationCreate, models.ConversationUpdate, models.Conversation](db, resource.Config{Table: "conversas", Name: "conversa"})
	mensagens := resource.New[models.MessageCreate, models.MessageUpdate, models.Message](db, resource.Config{Table: "mensagens", Name: "mensagem", Order: "timestamp.asc"})
	lembretes := resource.New[models.ReminderCreate, models.ReminderUpdate, models.Reminder](db, resource.Config{Table: "lembretes", Name: "lembrete", Order: "data_lembrete.asc"})
	dossier := handlers.NewDossierHandler(db)

	app := fiber.New()
	app.Post("/guido/contas", contas.Create)
	app.Get("/guido/contas/:id", contas.GetByID)
	app.Post("/guido/corretores", corretores.Create)
	app.Get("/guido/corretores/email/:email", corretores.GetOneBy("email", "email", false))
	app.Post("/guido/clientes", clientes.Create)
	app.Put("/guido/clientes/:id", clientes.Update)
	app.Post("/guido/conversas", conversas.Create)
	app.Get("/guido/conversas/cliente/:cliente_id", conversas.ListBy("cliente_id", "cliente_id"))
	app.Post("/guido/mensagens", mensagens.Create)
	app.Get("/guido/mensagens/conversa/:conversa_id", mensagens.ListBy("conversa_id", "conversa_id"))
	app.Post("/guido/lembretes", lembretes.Create)
	app.Get("/guido/lembretes/corretor/:corretor_id", lembretes.ListBy("corretor_id", "corretor_id"))
	app.Post("/guido/dossies-ia", dossier.CreateOrUpdate)
	app.Get("/guido/dossies-ia/cliente/:cliente_id", resource.New[models.DossierCreate, models.DossierUpdate, models.Dossier](db, resource.Config{Table: "dossies_ia", Name: "dossiê"}).GetOneBy("cliente_id", "cliente_id", true))

	code, raw := postJSON(t, app, "/guido/contas", map[string]string{
		"nome_conta": "Imobiliária Teste",
		"tipo_conta": "IMOBILIARIA",
		"documento":  "98.765.432/0001-10",
	})
	require.Equal(t, http.StatusOK, code, string(raw))
	var conta models.Account
	require.NoError(t, json.Unmarshal(raw, &conta))

	code, raw = postJSON(t, app, "/guido/corretores", map[string]string{
		"conta_id":   conta.ID,
		"nome":       "Ana Souza",
		"email":      "ana@imobteste.com.br",
		"funcao":     "DONO",
		"hash_senha": "$2b$12$abcdefghijklmnopqrstuv",
	})
	require.Equal(t, http.StatusOK, code, string(raw))
	var corretor models.Broker
	require.NoError(t, json.Unmarshal(raw, &corretor))
	assert.Equal(t, conta.ID, corretor.ContaID)

	code, raw = postJSON(t, app, "/guido/clientes", map[string]any{
		"conta_id":     conta.ID,
		"nome":         "Carlos Lima",
		"telefone":     "+5511999990000",
		"status_funil": "NOVO_LEAD",
		"corretor_id":  corretor.ID,
	})
	require.Equal(t, http.StatusOK, code, string(raw))
	var cliente models.Client
	require.NoError(t, json.Unmarshal(raw, &cliente))

	code, raw = postJSON(t, app, "/guido/conversas", map[string]string{
		"cliente_id":      cliente.ID,
		"plataforma":      "WHATSAPP",
		"status_conversa": "AGUARDANDO_CORRETOR",
	})
	require.Equal(t, http.StatusOK, code, string(raw))
	var conversa models.Conversation
	require.NoError(t, json.Unmarshal(raw, &conversa))

	for _, m := range []map[string]string{
		{"conversa_id": conversa.ID, "remetente": "CLIENTE", "conteudo_texto": "Olá, vi o anúncio do apartamento"},
		{"conversa_id": conversa.ID, "remetente": "CORRETOR", "conteudo_texto": "Bom dia! Posso agendar uma visita"},
	} {
		code, raw = postJSON(t, app, "/guido/mensagens", m)
		require.Equal(t, http.StatusOK, code, string(raw))
	}

	code, raw = postJSON(t, app, "/guido/lembretes", map[string]any{
		"corretor_id":   corretor.ID,
		"cliente_id":    cliente.ID,
		"descricao":     "Ligar para confirmar a visita",
		"data_lembrete": "2026-09-01T14:00:00Z",
		"status":        "PENDENTE",
	})
	require.Equal(t, http.StatusOK, code, string(raw))

	code, raw = postJSON(t, app, "/guido/dossies-ia", map[string]string{
		"cliente_id":    cliente.ID,
		"resumo_gerado": "Lead quente, quer visitar o apartamento",
	})
	require.Equal(t, http.StatusOK, code, string(raw))

	// Funnel stage moves after the first contact.
	code, raw = doPut(t, app, "/guido/clientes/"+cliente.ID, map[string]string{
		"status_funil": "VISITA_AGENDADA",
	})
	require.Equal(t, http.StatusOK, code, string(raw))

	// Now read everything back through the API.
	code, raw = getJSON(t, app, "/guido/contas/"+conta.ID)
	require.Equal(t, http.StatusOK, code)
	var gotConta models.Account
	require.NoError(t, json.Unmarshal(raw, &gotConta))
	assert.Equal(t, "Imobiliária Teste", gotConta.NomeConta)

	code, raw = getJSON(t, app, "/guido/corretores/email/ana@imobteste.com.br")
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(raw), "hash_senha")

	code, raw = getJSON(t, app, "/guido/conversas/cliente/"+cliente.ID)
	require.Equal(t, http.StatusOK, code)
	var convs []models.Conversation
	require.NoError(t, json.Unmarshal(raw, &convs))
	require.Len(t, convs, 1)

	code, raw = getJSON(t, app, "/guido/mensagens/conversa/"+conversa.ID)
	require.Equal(t, http.StatusOK, code)
	var msgs []models.Message
	require.NoError(t, json.Unmarshal(raw, &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, "CLIENTE", msgs[0].Remetente)
	assert.Equal(t, "CORRETOR", msgs[1].Remetente)

	code, raw = getJSON(t, app, "/guido/lembretes/corretor/"+corretor.ID)
	require.Equal(t, http.StatusOK, code)
	var reminders []models.Reminder
	require.NoError(t, json.Unmarshal(raw, &reminders))
	require.Len(t, reminders, 1)
	assert.Equal(t, "PENDENTE", reminders[0].Status)

	code, raw = getJSON(t, app, "/guido/dossies-ia/cliente/"+cliente.ID)
	require.Equal(t, http.StatusOK, code)
	var dossie models.Dossier
	require.NoError(t, json.Unmarshal(raw, &dossie))
	assert.Equal(t, cliente.ID, dossie.ClienteID)
}
