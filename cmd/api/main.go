package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/salespad-outreach/internal/entity"
	"github.com/xavierca1/salespad-outreach/internal/infra/config"
	"github.com/xavierca1/salespad-outreach/internal/infra/content"
	"github.com/xavierca1/salespad-outreach/internal/infra/database"
	"github.com/xavierca1/salespad-outreach/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/salespad-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/salespad-outreach/internal/infra/integration/openai"
	"github.com/xavierca1/salespad-outreach/internal/infra/queue"
	"github.com/xavierca1/salespad-outreach/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	messageRepo := database.NewMessageRepository(db)

	// 2. Command bus (fila durável de comandos)
	commandBus := queue.NewCommandBus(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Estratégias de conteúdo por canal
	registry := usecase.NewContentGeneratorRegistry()
	registry.Register(content.NewEmailGenerator())
	registry.Register(content.NewWhatsAppGenerator())
	registry.Register(content.NewLinkedInGenerator())
	registry.Register(content.NewVoiceGenerator())
	registry.Register(content.NewAdsGenerator())

	// Se houver API key, o email passa a ser gerado pelo serviço de IA
	aiClient := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if aiClient.Configured() {
		log.Println("🤖 Content API configurada, emails gerados por IA")
		registry.Register(content.NewAIEmailGenerator(aiClient))
	}

	// Canal sem generator vira erro de startup, não de runtime
	if err := registry.EnsureRegistered(
		entity.ChannelEmail, entity.ChannelWhatsApp, entity.ChannelLinkedIn,
		entity.ChannelVoice, entity.ChannelAds,
	); err != nil {
		log.Fatal(err)
	}

	// 4. Pipeline de eventos
	resolver := usecase.NewDefaultChannelResolver()
	generator := usecase.NewMessageGenerator(resolver, registry)

	events := usecase.NewEventDispatcher()

	onLeadAdded := usecase.NewSendMessagesOnLeadAddedHandler(generator, messageRepo, commandBus, events)
	onLeadReplied := usecase.NewReplyOnLeadRepliedHandler(registry, messageRepo, commandBus, events)

	events.Register(entity.LeadAddedEventName, onLeadAdded.Handle)
	events.Register(entity.LeadRepliedEventName, onLeadReplied.Handle)

	// 5. UseCases
	addLeadUC := usecase.NewAddLeadUseCase(leadRepo, events)
	replyUC := usecase.NewReplyToLeadUseCase(leadRepo, events)
	detailsUC := usecase.NewGetLeadDetailsUseCase(leadRepo, messageRepo)

	// 6. Handlers HTTP
	leadHandler := handlers.NewLeadHandler(addLeadUC, replyUC, detailsUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.HandleCreate)
	r.Post("/leads/{id}/reply", leadHandler.HandleReply)
	r.Get("/leads/{id}", leadHandler.HandleGetDetails)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Port
	log.Printf("🔥 Server SalesPad Outreach rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
