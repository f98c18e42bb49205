package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/guidocrm/guido-api/internal/core/auth"
	"github.com/guidocrm/guido-api/internal/core/integration"
	"github.com/guidocrm/guido-api/internal/core/supabase"
	"github.com/guidocrm/guido-api/internal/modules/crm/handlers"
	"github.com/guidocrm/guido-api/internal/modules/crm/models"
	"github.com/guidocrm/guido-api/internal/modules/crm/resource"
	"github.com/guidocrm/guido-api/internal/shared/config"
	"github.com/guidocrm/guido-api/internal/shared/database"
	"github.com/guidocrm/guido-api/internal/shared/logger"

	_ "github.com/guidocrm/guido-api/cmd/api/docs"
)

// @title Guido API
// @version 1.0.0
// @description CRUD REST API for the Guido real-estate CRM, backed by Supabase
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Printf("🚀 Starting %s on port %s", cfg.ProjectName, cfg.Port)

	// Init Supabase client
	db, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatalf("❌ Failed to init Supabase client: %v", err)
	}

	// Declarative table of CRM resources
	contas := resource.New[models.AccountCreate, models.AccountUpdate, models.Account](db, resource.Config{
		Table: "contas", Name: "conta",
	})
	corretores := resource.New[models.BrokerCreate, models.BrokerUpdate, models.Broker](db, resource.Config{
		Table: "corretores", Name: "corretor",
	})
	clientes := resource.New[models.ClientCreate, models.ClientUpdate, models.Client](db, resource.Config{
		Table: "clientes", Name: "cliente",
	})
	conversas := resource.New[models.ConversationCreate, models.ConversationUpdate, models.Conversation](db, resource.Config{
		Table: "conversas", Name: "conversa",
	})
	mensagens := resource.New[models.MessageCreate, models.MessageUpdate, models.Message](db, resource.Config{
		Table: "mensagens", Name: "mensagem", Order: "timestamp.asc",
	})
	lembretes := resource.New[models.ReminderCreate, models.ReminderUpdate, models.Reminder](db, resource.Config{
		Table: "lembretes", Name: "lembrete", Order: "data_lembrete.asc",
	})
	dossies := resource.New[models.DossierCreate, models.DossierUpdate, models.Dossier](db, resource.Config{
		Table: "dossies_ia", Name: "dossiê",
	})
	assinaturas := resource.New[models.SubscriptionCreate, models.SubscriptionUpdate, models.Subscription](db, resource.Config{
		Table: "assinaturas", Name: "assinatura",
	})
	faturas := resource.New[models.InvoiceCreate, models.InvoiceUpdate, models.Invoice](db, resource.Config{
		Table: "faturas", Name: "fatura", Order: "data_vencimento.desc",
	})
	conexoes := resource.New[models.ExternalConnectionCreate, models.ExternalConnectionUpdate, models.ExternalConnection](db, resource.Config{
		Table: "conexoes_externas", Name: "conexão externa",
	})
	planos := resource.New[models.PlanCreate, models.PlanUpdate, models.Plan](db, resource.Config{
		Table: "planos", Name: "plano", NumericID: true,
	})

	// Init handlers
	healthHandler := handlers.NewHealthHandler(cfg.Version)
	dossierHandler := handlers.NewDossierHandler(db)
	planHandler := handlers.NewPlanHandler(db)
	integrationHandler := integration.NewHandler(integration.NewClient(cfg.ExternalAPIBaseURL, cfg.ExternalAPIKey))

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: cfg.ProjectName,
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Root routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Bem-vindo à Guido API",
			"version": cfg.Version,
			"docs":    "/swagger/",
			"health":  cfg.APIPrefix + "/health",
		})
	})
	app.Get("/info", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":        cfg.ProjectName,
			"version":     cfg.Version,
			"debug":       cfg.Debug,
			"api_version": cfg.APIPrefix,
		})
	})

	v1 := app.Group(cfg.APIPrefix)

	// Health check
	v1.Get("/health", healthHandler.GetHealth)

	// Local auth (optional: needs DATABASE_URL)
	if cfg.DatabaseURL != "" {
		gormDB := database.NewDB(cfg.DatabaseURL)
		if err := gormDB.AutoMigrate(&auth.User{}); err != nil {
			log.Fatalf("❌ Failed to migrate users table: %v", err)
		}

		authService := auth.NewService(
			auth.NewRepository(gormDB),
			cfg.SecretKey,
			time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute,
		)
		authHandler := auth.NewHandler(authService)

		authGroup := v1.Group("/auth")
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
		authGroup.Get("/me", auth.Middleware(authService), authHandler.Me)
	} else {
		log.Println("⚠️ DATABASE_URL not set, auth routes disabled")
	}

	// Integration routes
	integ := v1.Group("/integration")
	integ.Post("/external-api", integrationHandler.CallExternalAPI)
	integ.Get("/health-external", integrationHandler.CheckExternalHealth)

	// CRM routes
	guido := v1.Group("/guido")

	guido.Post("/contas", contas.Create)
	guido.Get("/contas", contas.List)
	guido.Get("/contas/documento/:documento", contas.GetOneBy("documento", "documento", false))
	guido.Get("/contas/:id", contas.GetByID)
	guido.Put("/contas/:id", contas.Update)
	guido.Delete("/contas/:id", contas.Delete)

	guido.Post("/corretores", corretores.Create)
	guido.Get("/corretores/conta/:conta_id", corretores.ListBy("conta_id", "conta_id"))
	guido.Get("/corretores/email/:email", corretores.GetOneBy("email", "email", false))
	guido.Put("/corretores/:id", corretores.Update)
	guido.Delete("/corretores/:id", corretores.Delete)

	guido.Post("/clientes", clientes.Create)
	guido.Get("/clientes/conta/:conta_id", clientes.ListBy("conta_id", "conta_id"))
	guido.Get("/clientes/:id", clientes.GetByID)
	guido.Put("/clientes/:id", clientes.Update)
	guido.Delete("/clientes/:id", clientes.Delete)

	guido.Post("/conversas", conversas.Create)
	guido.Get("/conversas/cliente/:cliente_id", conversas.ListBy("cliente_id", "cliente_id"))
	guido.Put("/conversas/:id", conversas.Update)
	guido.Delete("/conversas/:id", conversas.Delete)

	guido.Post("/mensagens", mensagens.Create)
	guido.Get("/mensagens/conversa/:conversa_id", mensagens.ListBy("conversa_id", "conversa_id"))
	guido.Put("/mensagens/:id", mensagens.Update)
	guido.Delete("/mensagens/:id", mensagens.Delete)

	guido.Post("/lembretes", lembretes.Create)
	guido.Get("/lembretes/corretor/:corretor_id", lembretes.ListBy("corretor_id", "corretor_id"))
	guido.Put("/lembretes/:id", lembretes.Update)
	guido.Delete("/lembretes/:id", lembretes.Delete)

	guido.Post("/dossies-ia", dossierHandler.CreateOrUpdate)
	guido.Get("/dossies-ia/cliente/:cliente_id", dossies.GetOneBy("cliente_id", "cliente_id", true))
	guido.Put("/dossies-ia/:id", dossies.Update)
	guido.Delete("/dossies-ia/:id", dossies.Delete)

	guido.Post("/assinaturas", assinaturas.Create)
	guido.Get("/assinaturas/conta/:conta_id", assinaturas.GetOneBy("conta_id", "conta_id", true))
	guido.Put("/assinaturas/:id", assinaturas.Update)
	guido.Delete("/assinaturas/:id", assinaturas.Delete)

	guido.Post("/faturas", faturas.Create)
	guido.Get("/faturas/assinatura/:assinatura_id", faturas.ListBy("assinatura_id", "assinatura_id"))
	guido.Put("/faturas/:id", faturas.Update)
	guido.Delete("/faturas/:id", faturas.Delete)

	guido.Post("/conexoes-externas", conexoes.Create)
	guido.Get("/conexoes-externas/conta/:conta_id", conexoes.ListBy("conta_id", "conta_id"))
	guido.Put("/conexoes-externas/:id", conexoes.Update)
	guido.Delete("/conexoes-externas/:id", conexoes.Delete)

	guido.Get("/planos", planHandler.GetActivePlans)
	guido.Get("/planos/:id", planos.GetByID)
	guido.Put("/planos/:id", planos.Update)
	guido.Delete("/planos/:id", planos.Delete)

	log.Printf("✅ %s running at :%s", cfg.ProjectName, cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
