package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Handle("/metrics", h.metricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/facility/machines", h.OwnMachines)
		r.Route("/facility/{"+constants.FacilityIDURLParam+"}", func(r chi.Router) {
			r.Use(h.authorizeFacility)

			r.Get("/machines", h.Machines)
			r.Get("/usage-history", h.UsageHistory)
			r.Get("/alerts", h.Alerts)
			r.Get("/live", h.Live)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authorizeFleet)

			r.Get("/summary", h.Summary)
			r.Get("/alerts", h.FleetAlerts)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("writeJSON: encode response error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
