package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/karinanutri/clinic-platform/internal/appointments"
	"github.com/karinanutri/clinic-platform/internal/auth"
	"github.com/karinanutri/clinic-platform/internal/booking"
	"github.com/karinanutri/clinic-platform/internal/calculators"
	"github.com/karinanutri/clinic-platform/internal/clients"
	"github.com/karinanutri/clinic-platform/internal/finance"
	httpmiddleware "github.com/karinanutri/clinic-platform/internal/http/middleware"
	"github.com/karinanutri/clinic-platform/internal/kanban"
	"github.com/karinanutri/clinic-platform/internal/messaging"
	"github.com/karinanutri/clinic-platform/internal/reports"
	"github.com/karinanutri/clinic-platform/internal/settings"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AuthHandler         *auth.Handler
	BookingHandler      *booking.Handler
	CalculatorsHandler  *calculators.Handler
	ClientsHandler      *clients.Handler
	AppointmentsHandler *appointments.Handler
	FinanceHandler      *finance.Handler
	ReportsHandler      *reports.Handler
	KanbanHandler       *kanban.Handler
	SettingsHandler     *settings.Handler
	MessagingHandler    *messaging.Handler
	AdminAuthSecret     string
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints: health, metrics, login, the booking flow and the
	// calculator suite.
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.AuthHandler != nil {
			public.Post("/auth/login", cfg.AuthHandler.Login)
		}
		if cfg.BookingHandler != nil {
			public.Get("/booking/availability", cfg.BookingHandler.Availability)
			public.Post("/booking", cfg.BookingHandler.Submit)
		}
		if cfg.CalculatorsHandler != nil {
			public.Post("/calculators/evaluate", cfg.CalculatorsHandler.Evaluate)
		}
	})

	// Admin routes (protected by HMAC JWT)
	if cfg.AdminAuthSecret != "" {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))

			if cfg.ClientsHandler != nil {
				admin.Route("/clients", func(r chi.Router) {
					r.Get("/", cfg.ClientsHandler.List)
					r.Post("/", cfg.ClientsHandler.Create)
					r.Get("/{clientID}", cfg.ClientsHandler.Get)
					r.Put("/{clientID}", cfg.ClientsHandler.Update)
					r.Patch("/{clientID}/status", cfg.ClientsHandler.SetStatus)
					if cfg.MessagingHandler != nil {
						r.Post("/{clientID}/retention-message", cfg.MessagingHandler.Retention)
					}
					if cfg.ReportsHandler != nil {
						r.Get("/{clientID}/reports", cfg.ReportsHandler.ListByClient)
					}
				})
			}
			if cfg.AppointmentsHandler != nil {
				admin.Route("/appointments", func(r chi.Router) {
					r.Get("/", cfg.AppointmentsHandler.List)
					r.Post("/", cfg.AppointmentsHandler.Create)
					r.Patch("/{appointmentID}/status", cfg.AppointmentsHandler.SetStatus)
				})
			}
			if cfg.FinanceHandler != nil {
				admin.Route("/finances", func(r chi.Router) {
					r.Get("/", cfg.FinanceHandler.List)
					r.Post("/", cfg.FinanceHandler.Create)
					r.Put("/{recordID}", cfg.FinanceHandler.Update)
					r.Delete("/{recordID}", cfg.FinanceHandler.Delete)
				})
			}
			if cfg.ReportsHandler != nil {
				admin.Route("/reports", func(r chi.Router) {
					r.Get("/{appointmentID}", cfg.ReportsHandler.Get)
					r.Put("/{appointmentID}", cfg.ReportsHandler.Save)
				})
			}
			if cfg.KanbanHandler != nil {
				admin.Route("/kanban", func(r chi.Router) {
					r.Get("/", cfg.KanbanHandler.List)
					r.Post("/", cfg.KanbanHandler.Create)
					r.Patch("/{taskID}/column", cfg.KanbanHandler.Move)
					r.Delete("/{taskID}", cfg.KanbanHandler.Delete)
				})
			}
			if cfg.SettingsHandler != nil {
				admin.Route("/settings", func(r chi.Router) {
					r.Get("/", cfg.SettingsHandler.Get)
					r.Put("/", cfg.SettingsHandler.Update)
				})
			}
		})
	}

	return r
}
