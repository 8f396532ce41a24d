package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/auth"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/balance"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/config"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/database"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/group"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/notification"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/paymentsource"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/person"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/logging"
	mw "github.com/Kodanda10/Kharch-Baant-sub000/pkg/middleware"
)

// @title           Kharch Baant API
// @version         1.0
// @description     Shared expense tracking with split validation and settlement
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database")

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Person feature
	personRepo := person.NewRepository(db)
	personService := person.NewService(personRepo, jwtManager)
	personHandler := person.NewHandler(personService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo, notificationService)
	groupHandler := group.NewHandler(groupService)

	// Transaction feature
	transactionRepo := transaction.NewRepository(db)
	transactionService := transaction.NewService(transactionRepo, groupRepo, personRepo, notificationService)
	transactionHandler := transaction.NewHandler(transactionService)

	// Balance feature
	balanceService := balance.NewService(transactionRepo, groupRepo)
	balanceHandler := balance.NewHandler(balanceService)

	// Payment source feature
	paymentSourceRepo := paymentsource.NewRepository(db)
	paymentSourceService := paymentsource.NewService(paymentSourceRepo, transactionRepo)
	paymentSourceHandler := paymentsource.NewHandler(paymentSourceService)

	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Mount("/auth", personHandler.AuthRoutes())

		// Everything else requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth(jwtManager))

			r.Mount("/people", personHandler.Routes())
			r.Mount("/groups", groupHandler.Routes())
			r.Mount("/transactions", transactionHandler.Routes())
			r.Mount("/payment-sources", paymentSourceHandler.Routes())
			r.Mount("/notifications", notificationHandler.Routes())

			r.Get("/groups/{id}/transactions", transactionHandler.ListByGroup)
			r.Get("/groups/{id}/balances", balanceHandler.ForGroup)
			r.Get("/balances/me", balanceHandler.ForMe)
		})
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
