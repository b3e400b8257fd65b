package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/identity"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

const errAccessDenied = "access denied"

// authenticate resolves caller and rejects anonymous requests.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actx, err := h.identityService.Authenticate(r)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("authenticate: unauthenticated request")
			writeError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.WithContext(r.Context(), actx)))
	})
}

func (h *Handler) authorizeFacility(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		facilityID, err := entities.ParseFacilityID(facilityParam(r))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid facility id")
			return
		}

		actx, _ := identity.FromContext(r.Context())
		if result := h.authzService.Check(actx, facilityID); !result.Allowed() {
			writeError(w, http.StatusForbidden, errAccessDenied)
			return
		}

		next.ServeHTTP(w, r.WithContext(withFacility(r.Context(), facilityID)))
	})
}

func (h *Handler) authorizeFleet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actx, _ := identity.FromContext(r.Context())
		if result := h.authzService.CheckFleet(actx); !result.Allowed() {
			writeError(w, http.StatusForbidden, errAccessDenied)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			log.Debug().
				Str("requestId", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("requestLogger: http request")
		}()

		next.ServeHTTP(ww, r)
	})
}
