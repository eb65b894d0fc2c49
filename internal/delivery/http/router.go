package http

import (
	"net/http"

	"encontrapsi/internal/delivery/http/handler"
	"encontrapsi/internal/delivery/http/middleware"
	"encontrapsi/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	quizHandler         *handler.QuizHandler
	directoryHandler    *handler.DirectoryHandler
	psychologistHandler *handler.PsychologistHandler
	appointmentHandler  *handler.AppointmentHandler
	paymentHandler      *handler.PaymentHandler
	flowHandler         *handler.FlowHandler
	therapyHandler      *handler.TherapyHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	registry            *prometheus.Registry
}

func NewRouter(
	authHandler *handler.AuthHandler,
	quizHandler *handler.QuizHandler,
	directoryHandler *handler.DirectoryHandler,
	psychologistHandler *handler.PsychologistHandler,
	appointmentHandler *handler.AppointmentHandler,
	paymentHandler *handler.PaymentHandler,
	flowHandler *handler.FlowHandler,
	therapyHandler *handler.TherapyHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	registry *prometheus.Registry,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		quizHandler:         quizHandler,
		directoryHandler:    directoryHandler,
		psychologistHandler: psychologistHandler,
		appointmentHandler:  appointmentHandler,
		paymentHandler:      paymentHandler,
		flowHandler:         flowHandler,
		therapyHandler:      therapyHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		registry:            registry,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler(r.registry)).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Quiz routes (public, attempts are session-scoped)
	quiz := api.PathPrefix("/quiz").Subrouter()
	quiz.HandleFunc("/attempts", r.quizHandler.Start).Methods(http.MethodPost)
	quiz.HandleFunc("/attempts/{attemptId}/answers", r.quizHandler.Answer).Methods(http.MethodPost)
	quiz.HandleFunc("/attempts/{attemptId}/result", r.quizHandler.Result).Methods(http.MethodGet)

	// Therapy catalog (public)
	api.HandleFunc("/therapies", r.therapyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/therapies/{id}", r.therapyHandler.Get).Methods(http.MethodGet)

	// Navigation flow (public, session via X-Session-ID header)
	flow := api.PathPrefix("/flow").Subrouter()
	flow.HandleFunc("/state", r.flowHandler.GetState).Methods(http.MethodGet)
	flow.HandleFunc("/events", r.flowHandler.ApplyEvent).Methods(http.MethodPost)

	// Directory (public)
	directory := api.PathPrefix("/psychologists").Subrouter()
	directory.HandleFunc("", r.directoryHandler.Search).Methods(http.MethodGet)
	directory.HandleFunc("/match/{attemptId}", r.directoryHandler.Match).Methods(http.MethodGet)
	directory.HandleFunc("/{id}", r.directoryHandler.GetProfile).Methods(http.MethodGet)

	// Psychologist registration (public) and account (protected)
	api.HandleFunc("/psychologists/register", r.psychologistHandler.Register).Methods(http.MethodPost)

	psychologist := api.PathPrefix("/psychologist").Subrouter()
	psychologist.Use(r.authMiddleware.Authenticate)
	psychologist.Use(middleware.RequirePsychologist)
	psychologist.HandleFunc("/profile", r.psychologistHandler.GetOwnProfile).Methods(http.MethodGet)
	psychologist.HandleFunc("/subscription", r.psychologistHandler.GetSubscription).Methods(http.MethodGet)

	// Payment routes (public, rate limited on checkout creation)
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Handle("/preferences", r.rateLimitMiddleware.Handle(
		http.HandlerFunc(r.paymentHandler.CreatePreference))).Methods(http.MethodPost)
	payments.HandleFunc("/webhook", r.paymentHandler.Webhook).Methods(http.MethodPost)

	// Checkout return URLs
	r.router.HandleFunc("/payment/success", r.paymentHandler.Return).Methods(http.MethodGet)
	r.router.HandleFunc("/payment/failure", r.paymentHandler.Return).Methods(http.MethodGet)
	r.router.HandleFunc("/payment/pending", r.paymentHandler.Return).Methods(http.MethodGet)

	// Appointments (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPatch)

	appointmentsPatient := api.PathPrefix("/appointments").Subrouter()
	appointmentsPatient.Use(r.authMiddleware.Authenticate)
	appointmentsPatient.Use(middleware.RequirePatient)
	appointmentsPatient.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)

	appointmentsPsy := api.PathPrefix("/appointments").Subrouter()
	appointmentsPsy.Use(r.authMiddleware.Authenticate)
	appointmentsPsy.Use(middleware.RequirePsychologist)
	appointmentsPsy.HandleFunc("/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPatch)
	appointmentsPsy.HandleFunc("/{id}/reject", r.appointmentHandler.Reject).Methods(http.MethodPatch)
	appointmentsPsy.HandleFunc("/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPatch)

	// Notifications (protected)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.List).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
