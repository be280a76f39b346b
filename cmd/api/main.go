package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hannkit/lead-gateway/internal/infra/dedup"
	"github.com/hannkit/lead-gateway/internal/infra/http/handlers"
	"github.com/hannkit/lead-gateway/internal/infra/http/middleware"
	"github.com/hannkit/lead-gateway/internal/infra/integration/telegram"
	"github.com/hannkit/lead-gateway/internal/infra/mail"
	"github.com/hannkit/lead-gateway/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Idempotency store: shared cache when REDIS_URL is set, otherwise
	// process-local (best effort across instances, documented limitation).
	var store usecase.DedupStore
	dedupBackend := "memory"
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		store = dedup.NewRedis(redis.NewClient(opts), dedup.DefaultTTL)
		dedupBackend = "redis"
	} else {
		store = dedup.NewMemory(dedup.DefaultTTL)
	}

	// 2. Notification channels. A channel missing its configuration stays
	// nil (disabled); the use case reports NOT_CONFIGURED when both are.
	var tgClient *telegram.Client
	var chat usecase.ChatNotifier
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token != "" {
		tgClient = telegram.NewClient(token, "")
	}
	if tgClient != nil && chatID != "" {
		threadID, _ := strconv.Atoi(os.Getenv("TELEGRAM_THREAD_ID"))
		chat = telegram.NewNotifier(tgClient, chatID, threadID)
	} else {
		log.Printf("⚠️ Telegram channel disabled: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID missing")
	}

	var email usecase.EmailNotifier
	if os.Getenv("MAIL_API_KEY") != "" && os.Getenv("MAIL_FROM") != "" && os.Getenv("MAIL_TO") != "" {
		port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if err != nil {
			port = 587
		}
		email = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), port, os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_API_KEY"), os.Getenv("MAIL_FROM"), os.Getenv("MAIL_TO"),
		)
	} else {
		log.Printf("⚠️ Email channel disabled: MAIL_API_KEY, MAIL_FROM or MAIL_TO missing")
	}

	siteURL := os.Getenv("SITE_URL")

	// 3. UseCases
	submitLead := usecase.NewSubmitLeadUseCase(store, chat, email)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(submitLead)
	webhookHandler := handlers.NewBotWebhookHandler(tgClient, siteURL)
	healthHandler := handlers.NewHealthHandler(chat != nil, email != nil, dedupBackend)

	// 5. Router
	allowedOrigins := []string{"*"}
	if siteURL != "" {
		allowedOrigins = []string{siteURL, "*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recover)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Idempotency-Key"},
	}))

	// HandleFunc, not Post: the handlers own the method gate so the 405
	// carries the Allow header and the JSON envelope.
	r.HandleFunc("/api/lead", leadHandler.Handle)
	r.HandleFunc("/api/tg-webhook", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 hannkit lead gateway listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
