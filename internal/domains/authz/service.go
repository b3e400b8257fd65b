package authz

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

type (
	IMetricsService interface {
		IncAuthzDecision(decision, reason string)
	}
)

// Service wraps authorization decisions with logging and metrics.
type Service struct {
	metricsService IMetricsService

	// subjects already denied for missing facility assignment
	unassigned sync.Map
}

func NewService(metricsService IMetricsService) *Service {
	return &Service{
		metricsService: metricsService,
	}
}

// Check authorizes facility scoped read.
func (s *Service) Check(actx entities.AuthorizationContext, requested entities.FacilityID) Result {
	result := Authorize(actx, requested)
	s.observe(actx, result, log.Debug().Int64("facilityId", int64(requested)))

	return result
}

// CheckFleet authorizes fleet wide read.
func (s *Service) CheckFleet(actx entities.AuthorizationContext) Result {
	result := AuthorizeFleet(actx)
	s.observe(actx, result, log.Debug())

	return result
}

func (s *Service) observe(actx entities.AuthorizationContext, result Result, event *zerolog.Event) {
	s.metricsService.IncAuthzDecision(result.Decision.String(), result.Reason.String())

	event.
		Str("subject", actx.Subject).
		Str("role", actx.Role.String()).
		Str("decision", result.Decision.String()).
		Str("reason", result.Reason.String()).
		Msg("observe: authorization decision")

	if result.Reason != ReasonNoFacilityAssignment {
		return
	}

	if _, seen := s.unassigned.LoadOrStore(actx.Subject, struct{}{}); seen {
		log.Warn().
			Str("subject", actx.Subject).
			Msg("observe: facility user repeatedly denied without facility assignment, check user configuration")
	}
}
