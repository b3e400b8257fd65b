package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/metrics"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type (
	IBrokerService interface {
		Publish(ctx context.Context, subject string, payload []byte) (err error)
	}

	ISinkService interface {
		AppendTelemetry(ctx context.Context, message entities.TelemetryMessage) (err error)
	}

	IMetricsService interface {
		IncPublish(result string)
		IncSinkWrite(result string)
	}
)

type Service struct {
	brokerService  IBrokerService
	sinkService    ISinkService
	metricsService IMetricsService
	publishTimeout time.Duration
	sinkTimeout    time.Duration
}

func NewService(
	brokerService IBrokerService,
	sinkService ISinkService,
	metricsService IMetricsService,
	publishTimeout time.Duration,
	sinkTimeout time.Duration,
) *Service {
	return &Service{
		brokerService:  brokerService,
		sinkService:    sinkService,
		metricsService: metricsService,
		publishTimeout: publishTimeout,
		sinkTimeout:    sinkTimeout,
	}
}

// Publish emits message to machine topic and persists it to analytics sink.
// Both run concurrently, only publish failure is returned.
func (s *Service) Publish(ctx context.Context, message entities.TelemetryMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("Publish: %w: %w", errs.ErrPublishFailed, err)
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		s.persist(ctx, message)
	})

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	subject := constants.TopicToSubject(constants.TelemetryTopic(message.MachineID))
	err = s.brokerService.Publish(publishCtx, subject, payload)
	wg.Wait()

	switch {
	case err == nil:
		s.metricsService.IncPublish(metrics.ResultOK)
		return nil
	case errors.Is(err, errs.ErrTransportUnavailable):
		s.metricsService.IncPublish(metrics.ResultUnavailable)
	default:
		s.metricsService.IncPublish(metrics.ResultFailed)
	}

	return fmt.Errorf("Publish: machine %d: %w", message.MachineID, err)
}

// persist writes message to sink, giving up after sink timeout.
func (s *Service) persist(ctx context.Context, message entities.TelemetryMessage) {
	sinkCtx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sinkService.AppendTelemetry(sinkCtx, message)
	}()

	var err error
	select {
	case err = <-done:
	case <-sinkCtx.Done():
		err = fmt.Errorf("persist: %w", sinkCtx.Err())
	}

	if err != nil {
		s.metricsService.IncSinkWrite(metrics.ResultFailed)
		log.Error().
			Err(err).
			Int("machineId", message.MachineID).
			Msg("persist: append telemetry error")

		return
	}

	s.metricsService.IncSinkWrite(metrics.ResultOK)
}
