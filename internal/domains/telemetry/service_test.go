package telemetry_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/metrics"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/telemetry"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/telemetry/telemetry_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

var (
	errTestError = errors.New("test error")
)

type serviceFields struct {
	brokerService  *telemetry_mocks.MockIBrokerService
	sinkService    *telemetry_mocks.MockISinkService
	metricsService *telemetry_mocks.MockIMetricsService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		brokerService:  telemetry_mocks.NewMockIBrokerService(t),
		sinkService:    telemetry_mocks.NewMockISinkService(t),
		metricsService: telemetry_mocks.NewMockIMetricsService(t),
	}
}

func testMessage() entities.TelemetryMessage {
	return entities.TelemetryMessage{
		MachineID:   4,
		FacilityID:  2,
		Status:      entities.MachineStatusOn,
		Temperature: 93,
		WaterLevel:  94,
		MilkLevel:   100,
		BeansLevel:  96,
		SugarLevel:  99.5,
		BrewType:    entities.BrewTypeAmericano,
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_Publish(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		prepare     func(f *serviceFields)
		expectedErr error
	}{
		{
			name: "published and persisted",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().
					Publish(mock.Anything, "coffeemachine.4.data", mock.MatchedBy(func(payload []byte) bool {
						var decoded map[string]any
						if err := json.Unmarshal(payload, &decoded); err != nil {
							return false
						}

						return decoded["machineId"] == float64(4) &&
							decoded["facilityId"] == float64(2) &&
							decoded["brewType"] == "AMERICANO" &&
							decoded["sugarLevel"] == 99.5 &&
							decoded["timestamp"] == "2024-05-01T12:00:00Z"
					})).
					Return(nil).
					Times(1)

				f.sinkService.EXPECT().
					AppendTelemetry(mock.Anything, testMessage()).
					Return(nil).
					Times(1)

				f.metricsService.EXPECT().IncPublish(metrics.ResultOK).Return().Times(1)
				f.metricsService.EXPECT().IncSinkWrite(metrics.ResultOK).Return().Times(1)
			},
		},
		{
			name: "sink failure does not fail publish",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().
					Publish(mock.Anything, "coffeemachine.4.data", mock.Anything).
					Return(nil).
					Times(1)

				f.sinkService.EXPECT().
					AppendTelemetry(mock.Anything, mock.Anything).
					Return(errTestError).
					Times(1)

				f.metricsService.EXPECT().IncPublish(metrics.ResultOK).Return().Times(1)
				f.metricsService.EXPECT().IncSinkWrite(metrics.ResultFailed).Return().Times(1)
			},
		},
		{
			name: "transport unavailable is still persisted",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().
					Publish(mock.Anything, mock.Anything, mock.Anything).
					Return(errs.ErrTransportUnavailable).
					Times(1)

				f.sinkService.EXPECT().
					AppendTelemetry(mock.Anything, testMessage()).
					Return(nil).
					Times(1)

				f.metricsService.EXPECT().IncPublish(metrics.ResultUnavailable).Return().Times(1)
				f.metricsService.EXPECT().IncSinkWrite(metrics.ResultOK).Return().Times(1)
			},
			expectedErr: errs.ErrTransportUnavailable,
		},
		{
			name: "broker reject",
			prepare: func(f *serviceFields) {
				f.brokerService.EXPECT().
					Publish(mock.Anything, mock.Anything, mock.Anything).
					Return(errs.ErrPublishFailed).
					Times(1)

				f.sinkService.EXPECT().
					AppendTelemetry(mock.Anything, mock.Anything).
					Return(nil).
					Times(1)

				f.metricsService.EXPECT().IncPublish(metrics.ResultFailed).Return().Times(1)
				f.metricsService.EXPECT().IncSinkWrite(metrics.ResultOK).Return().Times(1)
			},
			expectedErr: errs.ErrPublishFailed,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := telemetry.NewService(f.brokerService, f.sinkService, f.metricsService, time.Second, time.Second)

			err := service.Publish(context.Background(), testMessage())
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_PublishTimeout(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.brokerService.EXPECT().
		Publish(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ []byte) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

			<-ctx.Done()
			return errors.Join(errs.ErrPublishFailed, ctx.Err())
		}).
		Times(1)
	f.sinkService.EXPECT().AppendTelemetry(mock.Anything, mock.Anything).Return(nil).Times(1)
	f.metricsService.EXPECT().IncPublish(metrics.ResultFailed).Return().Times(1)
	f.metricsService.EXPECT().IncSinkWrite(metrics.ResultOK).Return().Times(1)

	service := telemetry.NewService(f.brokerService, f.sinkService, f.metricsService, 50*time.Millisecond, time.Second)

	err := service.Publish(context.Background(), testMessage())
	require.ErrorIs(t, err, errs.ErrPublishFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_SinkWriteBounded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() {
		close(release)
	})

	f := newServiceFields(t)
	f.brokerService.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(1)
	f.sinkService.EXPECT().
		AppendTelemetry(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entities.TelemetryMessage) error {
			// sink ignores context and stalls
			<-release
			return nil
		}).
		Times(1)
	f.metricsService.EXPECT().IncPublish(metrics.ResultOK).Return().Times(1)
	f.metricsService.EXPECT().IncSinkWrite(metrics.ResultFailed).Return().Times(1)

	service := telemetry.NewService(f.brokerService, f.sinkService, f.metricsService, time.Second, 50*time.Millisecond)

	start := time.Now()
	err := service.Publish(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
