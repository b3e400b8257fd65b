package constants

import (
	"time"
)

const (
	AccessTokenQueryParam = "access_token"
	SinceQueryParam       = "since"
	FacilityIDURLParam    = "facilityId"
)

const (
	DefaultFleetAPIURL = "http://localhost:8080"
	FleetctlTokenEnv   = "FLEET_TOKEN"
	FleetctlRetryCount = 2
	FleetctlReqTimeout = 5 * time.Second
)
