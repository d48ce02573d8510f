// Package server exposes the tracker core over a JSON HTTP API. This is the
// presentation contract: the four intents plus the readable collections and
// derived views.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azamanzizi-droid/ku2cash/internal/metrics"
	"github.com/azamanzizi-droid/ku2cash/internal/service"
)

// Server holds the HTTP handlers over the tracker core.
type Server struct {
	svc *service.KutuService
}

// New creates a Server for the given service.
func New(svc *service.KutuService) *Server {
	return &Server{svc: svc}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(logRequests)
	r.Use(instrument)
	r.Use(cors)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/members", s.handleListMembers)
		r.Post("/members", s.handleAddMember)
		r.Patch("/members/{id}", s.handleRenameMember)

		r.Get("/payments", s.handleListPayments)
		r.Post("/payments", s.handleAddPayment)
		r.Get("/payments/summary", s.handlePaymentSummary)

		r.Get("/schedule", s.handleGetSchedule)
		r.Put("/schedule", s.handleReorderSchedule)
		r.Get("/schedule/{week}/calendar", s.handleCalendar)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
	})

	return r
}
