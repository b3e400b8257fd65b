package errs

import (
	"errors"
)

var (
	ErrTransportUnavailable = errors.New("transport unavailable: not connected")
	ErrPublishFailed        = errors.New("publish failed")
	ErrReconnectInProgress  = errors.New("reconnect already in progress")
)

var (
	ErrMachineNotFound   = errors.New("machine not found")
	ErrInvalidStatus     = errors.New("invalid machine status")
	ErrInvalidFacilityID = errors.New("invalid facility id")
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnknownRole     = errors.New("unknown role")
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrAPIError      = errors.New("api error")
)
