package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/authz"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/identity"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

type (
	IAnalyticsService interface {
		ListMachines(ctx context.Context, facilityID entities.FacilityID) (machines []entities.TelemetryMessage, err error)
		ListUsage(ctx context.Context, facilityID entities.FacilityID, since time.Time) (rows []entities.UsageRow, err error)
		ListAlerts(ctx context.Context, facilityID entities.FacilityID, since time.Time) (alerts []entities.Alert, err error)
		ListFleetAlerts(ctx context.Context, since time.Time) (alerts []entities.Alert, err error)
		Summary(ctx context.Context, since time.Time) (summary entities.FleetSummary, err error)
	}

	IIdentityService interface {
		Authenticate(r *http.Request) (actx entities.AuthorizationContext, err error)
	}

	IAuthzService interface {
		Check(actx entities.AuthorizationContext, requested entities.FacilityID) (result authz.Result)
		CheckFleet(actx entities.AuthorizationContext) (result authz.Result)
	}

	ILiveService interface {
		Serve(w http.ResponseWriter, r *http.Request, facilityID entities.FacilityID) (err error)
	}
)

type (
	MachinesResponse struct {
		Machines    []entities.TelemetryMessage `json:"machines"`
		Alerts      []entities.Alert            `json:"alerts"`
		RefreshedAt time.Time                   `json:"refreshedAt"`
	}

	UsageResponse struct {
		Rows        []entities.UsageRow `json:"rows"`
		Since       time.Time           `json:"since"`
		RefreshedAt time.Time           `json:"refreshedAt"`
	}

	AlertsResponse struct {
		Alerts      []entities.Alert `json:"alerts"`
		RefreshedAt time.Time        `json:"refreshedAt"`
	}
)

type facilityKey struct{}

// Handler serves facility scoped dashboard api.
type Handler struct {
	analyticsService IAnalyticsService
	identityService  IIdentityService
	authzService     IAuthzService
	liveService      ILiveService
	metricsHandler   http.Handler

	now func() time.Time
}

func NewHandler(
	analyticsService IAnalyticsService,
	identityService IIdentityService,
	authzService IAuthzService,
	liveService ILiveService,
	metricsHandler http.Handler,
) *Handler {
	return &Handler{
		analyticsService: analyticsService,
		identityService:  identityService,
		authzService:     authzService,
		liveService:      liveService,
		metricsHandler:   metricsHandler,

		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Machines(w http.ResponseWriter, r *http.Request) {
	h.machines(w, r, facilityFromContext(r.Context()))
}

// OwnMachines serves machines of caller's assigned facility.
func (h *Handler) OwnMachines(w http.ResponseWriter, r *http.Request) {
	actx, _ := identity.FromContext(r.Context())

	var facilityID entities.FacilityID
	if actx.AssignedFacilityID != nil {
		facilityID = *actx.AssignedFacilityID
	}

	if result := h.authzService.Check(actx, facilityID); !result.Allowed() {
		writeError(w, http.StatusForbidden, errAccessDenied)
		return
	}

	if facilityID == 0 {
		writeError(w, http.StatusBadRequest, "no facility assigned")
		return
	}

	h.machines(w, r, facilityID)
}

func (h *Handler) machines(w http.ResponseWriter, r *http.Request, facilityID entities.FacilityID) {
	now := h.now()
	machines, err := h.analyticsService.ListMachines(r.Context(), facilityID)
	if err != nil {
		h.internalError(w, fmt.Errorf("machines: %w", err))
		return
	}

	alerts, err := h.analyticsService.ListAlerts(r.Context(), facilityID, now.Add(-constants.DefaultUsageWindow))
	if err != nil {
		h.internalError(w, fmt.Errorf("machines: %w", err))
		return
	}

	// machines view shows supply alerts only, full list is served by alerts endpoint
	supply := lo.Filter(alerts, func(alert entities.Alert, _ int) bool {
		return alert.Type.IsSupplyAlert()
	})

	writeJSON(w, http.StatusOK, MachinesResponse{
		Machines:    lo.Ternary(machines == nil, []entities.TelemetryMessage{}, machines),
		Alerts:      supply,
		RefreshedAt: now,
	})
}

func (h *Handler) UsageHistory(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	since, err := parseSince(r.URL.Query().Get(constants.SinceQueryParam), now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.analyticsService.ListUsage(r.Context(), facilityFromContext(r.Context()), since)
	if err != nil {
		h.internalError(w, fmt.Errorf("UsageHistory: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, UsageResponse{
		Rows:        lo.Ternary(rows == nil, []entities.UsageRow{}, rows),
		Since:       since,
		RefreshedAt: now,
	})
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	since, err := parseSince(r.URL.Query().Get(constants.SinceQueryParam), now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	alerts, err := h.analyticsService.ListAlerts(r.Context(), facilityFromContext(r.Context()), since)
	if err != nil {
		h.internalError(w, fmt.Errorf("Alerts: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, AlertsResponse{
		Alerts:      lo.Ternary(alerts == nil, []entities.Alert{}, alerts),
		RefreshedAt: now,
	})
}

// FleetAlerts serves alerts of every facility.
func (h *Handler) FleetAlerts(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	since, err := parseSince(r.URL.Query().Get(constants.SinceQueryParam), now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	alerts, err := h.analyticsService.ListFleetAlerts(r.Context(), since)
	if err != nil {
		h.internalError(w, fmt.Errorf("FleetAlerts: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, AlertsResponse{
		Alerts:      lo.Ternary(alerts == nil, []entities.Alert{}, alerts),
		RefreshedAt: now,
	})
}

func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	if err := h.liveService.Serve(w, r, facilityFromContext(r.Context())); err != nil {
		// upgrader already replied to client
		log.Debug().Err(err).Msg("Live: serve live stream error")
	}
}

// Summary serves fleet counters since start of current utc day.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	summary, err := h.analyticsService.Summary(r.Context(), now.Truncate(24*time.Hour))
	if err != nil {
		h.internalError(w, fmt.Errorf("Summary: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) {
		log.Debug().Err(err).Msg("internalError: request canceled")
		return
	}

	log.Error().Err(err).Msg("internalError: dashboard request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func withFacility(ctx context.Context, facilityID entities.FacilityID) context.Context {
	return context.WithValue(ctx, facilityKey{}, facilityID)
}

func facilityFromContext(ctx context.Context) entities.FacilityID {
	facilityID, _ := ctx.Value(facilityKey{}).(entities.FacilityID)
	return facilityID
}

func facilityParam(r *http.Request) string {
	return chi.URLParam(r, constants.FacilityIDURLParam)
}

// parseSince accepts lookback duration (24h) or RFC3339 timestamp.
func parseSince(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if lo.IsEmpty(raw) {
		return now.Add(-constants.DefaultUsageWindow), nil
	}

	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return time.Time{}, fmt.Errorf("invalid since %q", raw)
		}
		return now.Add(-d), nil
	}

	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid since %q", raw)
	}

	return since.UTC(), nil
}
