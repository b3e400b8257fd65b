package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type (
	IConn interface {
		PublishMsg(ctx context.Context, msg *nats.Msg) (ack *nats.PubAck, err error)
		IsConnected() bool
		Close()
	}

	IConnFactory interface {
		BuildConn() (conn IConn, err error)
	}
)

// Service keeps single broker connection and its state (disconnected -> connecting -> connected).
type Service struct {
	factory IConnFactory

	connectMx sync.Mutex
	mx        sync.RWMutex
	state     entities.ConnectionState
	conn      IConn
}

func NewService(factory IConnFactory) *Service {
	return &Service{
		factory: factory,
		state:   entities.ConnectionStateDisconnected,
	}
}

// State returns current connection state.
func (s *Service) State() entities.ConnectionState {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.state
}

// IsConnected reports whether publishing is possible, lost connection moves service to disconnected state.
func (s *Service) IsConnected() bool {
	_, ok := s.connected()
	return ok
}

// connected returns live connection read together with state under one lock.
func (s *Service) connected() (IConn, bool) {
	s.mx.RLock()
	state, conn := s.state, s.conn
	s.mx.RUnlock()

	if state != entities.ConnectionStateConnected || conn == nil {
		return nil, false
	}

	if conn.IsConnected() {
		return conn, true
	}

	s.markDisconnected(conn)
	return nil, false
}

// Connect builds new connection. Only one connect attempt may run at a time.
func (s *Service) Connect() error {
	if !s.connectMx.TryLock() {
		return fmt.Errorf("Connect: %w", errs.ErrReconnectInProgress)
	}
	defer s.connectMx.Unlock()

	s.mx.Lock()
	if s.state == entities.ConnectionStateConnected && s.conn.IsConnected() {
		s.mx.Unlock()
		return nil
	}

	stale := s.conn
	s.conn = nil
	s.state = entities.ConnectionStateConnecting
	s.mx.Unlock()

	if stale != nil {
		stale.Close()
	}

	conn, err := s.factory.BuildConn()
	if err != nil {
		s.setState(entities.ConnectionStateDisconnected, nil)
		return fmt.Errorf("Connect: %w: %w", errs.ErrTransportUnavailable, err)
	}

	s.setState(entities.ConnectionStateConnected, conn)
	log.Info().Msg("Connect: broker connected")

	return nil
}

// Publish sends payload and waits for broker ack.
func (s *Service) Publish(ctx context.Context, subject string, payload []byte) error {
	conn, ok := s.connected()
	if !ok {
		return fmt.Errorf("Publish: %w", errs.ErrTransportUnavailable)
	}

	msg := nats.NewMsg(subject)
	msg.Data = payload
	msg.Header.Set(nats.MsgIdHdr, uuid.NewString())

	if _, err := conn.PublishMsg(ctx, msg); err != nil {
		if isConnectionError(err) {
			s.markDisconnected(conn)
			return fmt.Errorf("Publish: %w: %w", errs.ErrTransportUnavailable, err)
		}

		return fmt.Errorf("Publish: %w: %w", errs.ErrPublishFailed, err)
	}

	return nil
}

// Close drops connection.
func (s *Service) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn != nil {
		s.conn.Close()
	}

	s.conn = nil
	s.state = entities.ConnectionStateDisconnected
	return nil
}

func (s *Service) setState(state entities.ConnectionState, conn IConn) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.state = state
	s.conn = conn
}

// markDisconnected drops conn unless it was already replaced by a newer one.
func (s *Service) markDisconnected(conn IConn) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn != conn || s.state != entities.ConnectionStateConnected {
		return
	}

	s.conn.Close()
	s.conn = nil
	s.state = entities.ConnectionStateDisconnected
	log.Warn().Msg("markDisconnected: broker connection lost")
}

func isConnectionError(err error) bool {
	return errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionDraining)
}
