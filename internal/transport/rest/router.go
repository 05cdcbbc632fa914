package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syedhisham/live-courses-frontend/internal/metrics"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/handler"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
	"github.com/syedhisham/live-courses-frontend/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	CatalogService *service.CatalogService
	PaymentService *service.PaymentService
	SessionService *service.LiveSessionService
	WizardService  *service.WizardService
	Toasts         *notify.Registry
	WSHub          *ws.Hub
	CookieName     string
	CookieTTL      time.Duration
}

// NewRouter creates the front-end router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.WizardService, c.Toasts, c.CookieName, c.CookieTTL)
	userHandler := handler.NewUserHandler()
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	paymentHandler := handler.NewPaymentHandler(c.PaymentService)
	sessionHandler := handler.NewLiveSessionHandler(c.SessionService)
	wizardHandler := handler.NewWizardHandler(c.WizardService)
	toastHandler := handler.NewToastHandler(c.Toasts)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.AuthService, c.CookieName)

	r.Use(corsMiddleware)
	r.Use(metrics.Middleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(sessionMW.RequireUser)

	userRoutes.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/me", userHandler.Me).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/courses", catalogHandler.Browse).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/courses/purchased", catalogHandler.Purchased).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/courses/{courseId}/materials/{materialId}/access-url", catalogHandler.MaterialAccessURL).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/checkout", paymentHandler.Checkout).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/toasts", toastHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/toasts/{toastId}", toastHandler.Dismiss).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/ws", wsHandler.Connect).Methods("GET")

	// Instructor routes
	instructorRoutes := v1.NewRoute().Subrouter()
	instructorRoutes.Use(sessionMW.RequireUser, sessionMW.RequireInstructor)

	instructorRoutes.HandleFunc("/courses/mine", catalogHandler.Mine).Methods("GET", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard", wizardHandler.State).Methods("GET", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard", wizardHandler.Abandon).Methods("DELETE", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard/course", wizardHandler.CreateCourse).Methods("POST", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard/materials", wizardHandler.UploadMaterial).Methods("POST", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard/next", wizardHandler.AdvanceToSchedule).Methods("POST", "OPTIONS")
	instructorRoutes.HandleFunc("/wizard/schedule", wizardHandler.ScheduleSession).Methods("POST", "OPTIONS")
	instructorRoutes.HandleFunc("/sessions/{sessionId}/start", sessionHandler.Start).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
