package broker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/environment"
)

type Factory struct {
	cfg environment.Broker
}

func NewFactory(cfg environment.Broker) *Factory {
	return &Factory{
		cfg: cfg,
	}
}

// BuildConn dials broker and makes sure telemetry stream exists.
func (f *Factory) BuildConn() (conn IConn, err error) { //nolint:ireturn // connection is swapped in tests
	options := []nats.Option{
		nats.Name(fmt.Sprintf("%s-%s", constants.BrokerClientName, uuid.NewString())),
		nats.Timeout(f.cfg.ConnectTimeout),
		// reconnects are driven by the scheduler
		nats.NoReconnect(),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("BuildConn: broker disconnected")
		}),
	}
	if !lo.IsEmpty(f.cfg.User) {
		options = append(options, nats.UserInfo(f.cfg.User, f.cfg.Password))
	}

	nc, err := nats.Connect(f.cfg.URL, options...)
	if err != nil {
		return conn, fmt.Errorf("BuildConn: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return conn, fmt.Errorf("BuildConn: %w", err)
	}

	if err = ensureStream(js, f.cfg.Stream); err != nil {
		nc.Close()
		return conn, fmt.Errorf("BuildConn: %w", err)
	}

	return &jetStreamConn{
		nc: nc,
		js: js,
	}, nil
}

func ensureStream(js nats.JetStreamManager, stream string) error {
	_, err := js.StreamInfo(stream)
	if err == nil {
		return nil
	}

	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("ensureStream: %w", err)
	}

	if _, err = js.AddStream(&nats.StreamConfig{
		Name:       stream,
		Subjects:   []string{constants.TelemetrySubjects},
		Storage:    nats.FileStorage,
		Duplicates: constants.StreamDuplicateWindow,
	}); err != nil {
		return fmt.Errorf("ensureStream: %w", err)
	}

	log.Info().
		Str("stream", stream).
		Msg("ensureStream: telemetry stream created")

	return nil
}

type jetStreamConn struct {
	nc *nats.Conn
	js nats.JetStreamContext
}

func (c *jetStreamConn) PublishMsg(ctx context.Context, msg *nats.Msg) (ack *nats.PubAck, err error) {
	return c.js.PublishMsg(msg, nats.Context(ctx))
}

func (c *jetStreamConn) IsConnected() bool {
	return c.nc.IsConnected()
}

func (c *jetStreamConn) Close() {
	c.nc.Close()
}
