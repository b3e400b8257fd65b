package simulator_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/alert"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/brew"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/brew/brew_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/machinestate"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/simulator"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/simulator/simulator_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/environment"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

var (
	errTestError = errors.New("test error")
)

type serviceFields struct {
	stateService     *machinestate.Service
	random           brew.IRandomSource
	alertSinkService *simulator_mocks.MockIAlertSinkService
	telemetryService *simulator_mocks.MockITelemetryService
	brokerService    *simulator_mocks.MockIBrokerService
	liveService      *simulator_mocks.MockILiveService
	metricsService   *simulator_mocks.MockIMetricsService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		stateService:     machinestate.NewService(environment.DefaultFleet(2, 3)),
		random:           brew.NewHashedSource(1),
		alertSinkService: simulator_mocks.NewMockIAlertSinkService(t),
		telemetryService: simulator_mocks.NewMockITelemetryService(t),
		brokerService:    simulator_mocks.NewMockIBrokerService(t),
		liveService:      simulator_mocks.NewMockILiveService(t),
		metricsService:   simulator_mocks.NewMockIMetricsService(t),
	}
}

func newService(t *testing.T, f *serviceFields) *simulator.Service {
	t.Helper()

	engineService, err := brew.NewService(entities.DefaultRecipes(), f.random)
	require.NoError(t, err)

	alertService := alert.NewService(alert.Thresholds{
		LowSupplyLevel:  20,
		HighTemperature: 105,
	})

	return simulator.NewService(
		f.stateService,
		engineService,
		alertService,
		f.alertSinkService,
		f.telemetryService,
		f.brokerService,
		f.liveService,
		f.metricsService,
		10*time.Millisecond,
		3,
	)
}

func expectTickMetrics(f *serviceFields) {
	f.metricsService.EXPECT().ObserveTickDuration(mock.Anything).Return().Times(1)
	f.metricsService.EXPECT().IncTick().Return().Times(1)
	f.metricsService.EXPECT().IncBrew(mock.Anything).Return().Maybe()
}

func TestService_Tick(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(f *serviceFields)
		expectedReport simulator.TickReport
		compareBrewed  bool
	}{
		{
			name: "broker unavailable skips tick",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().IsConnected().Return(false).Times(1)
				f.brokerService.EXPECT().Connect().Return(errs.ErrTransportUnavailable).Times(1)
				f.metricsService.EXPECT().IncSkippedTick().Return().Times(1)
				f.metricsService.EXPECT().ObserveTickDuration(mock.Anything).Return().Times(1)
			},
			expectedReport: simulator.TickReport{
				Skipped: true,
			},
		},
		{
			name: "reconnected at tick start",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().IsConnected().Return(false).Times(1)
				f.brokerService.EXPECT().Connect().Return(nil).Times(1)
				f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Times(6)
				f.telemetryService.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(6)
				expectTickMetrics(f)
			},
			expectedReport: simulator.TickReport{
				Machines:  6,
				Published: 6,
			},
		},
		{
			name: "one failing publish does not stop others",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().IsConnected().Return(true).Times(1)
				f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Times(6)
				f.telemetryService.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(message entities.TelemetryMessage) bool {
						return message.MachineID == 3
					})).
					Return(errs.ErrPublishFailed).
					Times(1)
				f.telemetryService.EXPECT().
					Publish(mock.Anything, mock.Anything).
					Return(nil).
					Times(5)
				expectTickMetrics(f)
			},
			expectedReport: simulator.TickReport{
				Machines:  6,
				Published: 5,
				Failed:    1,
			},
		},
		{
			name: "low water alert",
			prepare: func(f *serviceFields) {
				random := brew_mocks.NewMockIRandomSource(t)
				// black coffee, temperature up
				random.EXPECT().
					IntN(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(1)
				f.random = random

				_, _, _, err := f.stateService.Advance(1, func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
					state.WaterLevel = 21
					return state, entities.BrewTypeNone
				})
				require.NoError(t, err)

				f.brokerService.EXPECT().IsConnected().Return(true).Times(1)
				f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Times(6)
				f.telemetryService.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(6)

				isLowWater := mock.MatchedBy(func(a entities.Alert) bool {
					return a.MachineID == 1 && a.Type == entities.AlertTypeLowWater
				})
				f.liveService.EXPECT().BroadcastAlert(isLowWater).Return().Times(1)
				f.alertSinkService.EXPECT().AppendAlert(mock.Anything, isLowWater).Return(errTestError).Times(1)
				f.metricsService.EXPECT().IncAlert(entities.AlertTypeLowWater.String()).Return().Times(1)
				expectTickMetrics(f)
			},
			expectedReport: simulator.TickReport{
				Machines:  6,
				Brewed:    6,
				Published: 6,
				Alerts:    1,
			},
			compareBrewed: true,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newService(t, f)
			report := service.Tick(context.Background())

			assert.Equal(t, testCase.expectedReport.Skipped, report.Skipped)
			assert.Equal(t, testCase.expectedReport.Machines, report.Machines)
			assert.Equal(t, testCase.expectedReport.Published, report.Published)
			assert.Equal(t, testCase.expectedReport.Failed, report.Failed)
			assert.Equal(t, testCase.expectedReport.Alerts, report.Alerts)
			if testCase.compareBrewed {
				assert.Equal(t, testCase.expectedReport.Brewed, report.Brewed)
			}

			for _, state := range service.Fleet() {
				for _, level := range []float64{state.WaterLevel, state.MilkLevel, state.BeansLevel, state.SugarLevel} {
					assert.GreaterOrEqual(t, level, 0.0)
					assert.LessOrEqual(t, level, 100.0)
				}
			}
		})
	}
}

func TestService_TickAdvancesEveryMachine(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.brokerService.EXPECT().IsConnected().Return(true).Times(2)
	f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Times(12)
	f.telemetryService.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(12)
	f.metricsService.EXPECT().ObserveTickDuration(mock.Anything).Return().Times(2)
	f.metricsService.EXPECT().IncTick().Return().Times(2)
	f.metricsService.EXPECT().IncBrew(mock.Anything).Return().Maybe()

	service := newService(t, f)
	before := service.Fleet()

	first := service.Tick(context.Background())
	second := service.Tick(context.Background())
	assert.Equal(t, uint64(0), first.Tick)
	assert.Equal(t, uint64(1), second.Tick)

	after := service.Fleet()
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].MachineID, after[i].MachineID)
		assert.NotEqual(t, before[i], after[i])
	}
}

func TestService_Run(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)

	var ticks atomic.Int32
	f.brokerService.EXPECT().IsConnected().Return(true).Maybe()
	f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Maybe()
	f.telemetryService.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.metricsService.EXPECT().ObserveTickDuration(mock.Anything).Return().Maybe()
	f.metricsService.EXPECT().IncBrew(mock.Anything).Return().Maybe()
	f.metricsService.EXPECT().IncAlert(mock.Anything).Return().Maybe()
	f.liveService.EXPECT().BroadcastAlert(mock.Anything).Return().Maybe()
	f.alertSinkService.EXPECT().AppendAlert(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.metricsService.EXPECT().IncTick().Run(func() { ticks.Add(1) }).Return().Maybe()

	service := newService(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestService_WaitForInFlightTick(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)

	var (
		publishing = make(chan struct{})
		release    = make(chan struct{})
		once       sync.Once
	)
	f.brokerService.EXPECT().IsConnected().Return(true).Maybe()
	f.liveService.EXPECT().BroadcastTelemetry(mock.Anything).Return().Maybe()
	f.telemetryService.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entities.TelemetryMessage) error {
			once.Do(func() { close(publishing) })
			<-release
			return nil
		}).Maybe()
	f.metricsService.EXPECT().ObserveTickDuration(mock.Anything).Return().Maybe()
	f.metricsService.EXPECT().IncBrew(mock.Anything).Return().Maybe()
	f.metricsService.EXPECT().IncAlert(mock.Anything).Return().Maybe()
	f.liveService.EXPECT().BroadcastAlert(mock.Anything).Return().Maybe()
	f.alertSinkService.EXPECT().AppendAlert(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.metricsService.EXPECT().IncTick().Return().Maybe()

	service := newService(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	select {
	case <-publishing:
	case <-time.After(time.Second):
		t.Fatal("tick did not start")
	}
	cancel()

	stopped := make(chan struct{})
	go func() {
		service.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Wait returned while tick was publishing")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after tick finished")
	}
}
