package simulator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/alert"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/machinestate"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

type (
	IStateService interface {
		IDs() (ids []int)
		Get(machineID int) (state entities.MachineState, err error)
		Snapshot() (states []entities.MachineState)
		Advance(machineID int, fn machinestate.AdvanceFunc) (prev, next entities.MachineState, brewType entities.BrewType, err error)
		SetStatus(machineID int, status entities.MachineStatus) (state entities.MachineState, err error)
	}

	IEngineService interface {
		Advance(state entities.MachineState, tick uint64) (next entities.MachineState, brewType entities.BrewType)
		CanBrewAny(state entities.MachineState) (ok bool)
	}

	IAlertService interface {
		Evaluate(transition alert.Transition) (alerts []entities.Alert)
	}

	IAlertSinkService interface {
		AppendAlert(ctx context.Context, alert entities.Alert) (err error)
	}

	ITelemetryService interface {
		Publish(ctx context.Context, message entities.TelemetryMessage) (err error)
	}

	IBrokerService interface {
		IsConnected() (ok bool)
		Connect() (err error)
	}

	ILiveService interface {
		BroadcastTelemetry(message entities.TelemetryMessage)
		BroadcastAlert(alert entities.Alert)
	}

	IMetricsService interface {
		IncTick()
		IncSkippedTick()
		ObserveTickDuration(duration time.Duration)
		IncBrew(brewType string)
		IncAlert(alertType string)
	}
)

// TickReport summarizes one scheduler tick.
type TickReport struct {
	Tick      uint64
	Skipped   bool
	Machines  int
	Brewed    int
	Published int
	Failed    int
	Alerts    int
	Duration  time.Duration
}

type machineResult struct {
	brewed bool
	alerts int
	err    error
}

type Service struct {
	stateService     IStateService
	engineService    IEngineService
	alertService     IAlertService
	alertSinkService IAlertSinkService
	telemetryService ITelemetryService
	brokerService    IBrokerService
	liveService      ILiveService
	metricsService   IMetricsService

	interval    time.Duration
	parallelism int
	tick        atomic.Uint64
	running     conc.WaitGroup
}

func NewService(
	stateService IStateService,
	engineService IEngineService,
	alertService IAlertService,
	alertSinkService IAlertSinkService,
	telemetryService ITelemetryService,
	brokerService IBrokerService,
	liveService ILiveService,
	metricsService IMetricsService,
	interval time.Duration,
	parallelism int,
) *Service {
	return &Service{
		stateService:     stateService,
		engineService:    engineService,
		alertService:     alertService,
		alertSinkService: alertSinkService,
		telemetryService: telemetryService,
		brokerService:    brokerService,
		liveService:      liveService,
		metricsService:   metricsService,

		interval:    interval,
		parallelism: max(parallelism, 1),
	}
}

// Start runs scheduler in background, Wait blocks until it returns.
func (s *Service) Start(ctx context.Context) {
	s.running.Go(func() {
		s.Run(ctx)
	})
}

// Wait blocks until scheduler started by Start has finished its current tick and stopped.
func (s *Service) Wait() {
	s.running.Wait()
}

// Run fires ticks on fixed interval until ctx is done. Ticks are processed one after another,
// ticks missed while processing are dropped by the ticker.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().
		Dur("interval", s.interval).
		Int("machines", len(s.stateService.IDs())).
		Msg("Run: simulator started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Run: simulator stopped")
			return

		case <-ticker.C:
			report := s.Tick(ctx)
			if report.Skipped {
				continue
			}

			log.Debug().
				Uint64("tick", report.Tick).
				Int("brewed", report.Brewed).
				Int("published", report.Published).
				Int("failed", report.Failed).
				Int("alerts", report.Alerts).
				Dur("duration", report.Duration).
				Msg("Run: tick processed")
		}
	}
}

// Tick advances every machine once and publishes resulting telemetry.
func (s *Service) Tick(ctx context.Context) (report TickReport) {
	started := time.Now()
	defer func() {
		report.Duration = time.Since(started)
		s.metricsService.ObserveTickDuration(report.Duration)
	}()

	// one reconnect attempt per tick
	if !s.brokerService.IsConnected() {
		if err := s.brokerService.Connect(); err != nil {
			log.Warn().
				Err(err).
				Msg("Tick: broker unavailable, tick skipped")

			s.metricsService.IncSkippedTick()
			report.Skipped = true
			return report
		}
	}

	report.Tick = s.tick.Add(1) - 1
	timestamp := started.UTC()
	ids := s.stateService.IDs()

	p := pool.NewWithResults[machineResult]().WithMaxGoroutines(s.parallelism)
	for _, id := range ids {
		p.Go(func() machineResult {
			return s.processMachine(ctx, id, report.Tick, timestamp)
		})
	}

	for _, result := range p.Wait() {
		report.Alerts += result.alerts
		if result.brewed {
			report.Brewed++
		}

		if result.err != nil {
			report.Failed++
			continue
		}

		report.Published++
	}

	report.Machines = len(ids)
	s.metricsService.IncTick()

	return report
}

func (s *Service) processMachine(ctx context.Context, machineID int, tick uint64, timestamp time.Time) (result machineResult) {
	prev, next, brewType, err := s.stateService.Advance(machineID, func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
		return s.engineService.Advance(state, tick)
	})
	if err != nil {
		log.Error().
			Err(err).
			Int("machineId", machineID).
			Msg("processMachine: advance error")

		return machineResult{err: err}
	}

	if brewType.IsBrewed() {
		result.brewed = true
		s.metricsService.IncBrew(brewType.String())
	}

	alerts := s.alertService.Evaluate(alert.Transition{
		Prev:        prev,
		Next:        next,
		PrevCanBrew: s.engineService.CanBrewAny(prev),
		NextCanBrew: s.engineService.CanBrewAny(next),
		Timestamp:   timestamp,
	})
	for _, a := range alerts {
		s.metricsService.IncAlert(a.Type.String())
		s.liveService.BroadcastAlert(a)
		if err = s.alertSinkService.AppendAlert(ctx, a); err != nil {
			log.Error().
				Err(err).
				Int("machineId", machineID).
				Str("alertType", a.Type.String()).
				Msg("processMachine: append alert error")
		}
	}
	result.alerts = len(alerts)

	message := entities.NewTelemetryMessage(next, brewType, timestamp)
	s.liveService.BroadcastTelemetry(message)

	if err = s.telemetryService.Publish(ctx, message); err != nil {
		log.Error().
			Err(err).
			Int("machineId", machineID).
			Msg("processMachine: publish error")

		result.err = err
	}

	return result
}

// State returns current in-memory state of machine.
func (s *Service) State(machineID int) (state entities.MachineState, err error) {
	return s.stateService.Get(machineID)
}

// Fleet returns current in-memory state of every machine.
func (s *Service) Fleet() []entities.MachineState {
	return s.stateService.Snapshot()
}

// SetStatus switches machine power on operator request.
func (s *Service) SetStatus(machineID int, status entities.MachineStatus) (state entities.MachineState, err error) {
	state, err = s.stateService.SetStatus(machineID, status)
	if err != nil {
		return state, err
	}

	log.Info().
		Int("machineId", machineID).
		Str("status", status.String()).
		Msg("SetStatus: machine status changed")

	return state, nil
}
