package constants

import (
	"time"
)

const (
	ServiceName      = "coffee-fleet"
	BrokerClientName = "coffee-simulator"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

const (
	DefaultTickInterval        = 5 * time.Second
	DefaultTickParallelism     = 4
	DefaultFacilities          = 4
	DefaultMachinesPerFacility = 3
	DefaultLowSupplyLevel      = 20.0
	DefaultHighTemperature     = 105
	DefaultPublishTimeout      = 2 * time.Second
	DefaultConnectTimeout      = 3 * time.Second
	DefaultStoreRetention      = 7 * 24 * time.Hour
	DefaultStoreWriteTimeout   = 2 * time.Second
	DefaultUsageWindow         = 24 * time.Hour
	DefaultAPIAddr             = ":8080"
	DefaultHTTPReadTimeout     = 10 * time.Second
	DefaultShutdownTimeout     = 5 * time.Second
)

const (
	InitialTemperature = 92
	MinTemperature     = 85
	MaxTemperature     = 110
	FullSupplyLevel    = 100.0
	EmptySupplyLevel   = 0.0
)

const (
	LivePingPeriod = 4 * time.Second
	LivePongWait   = 6 * time.Second
	LiveWriteWait  = 2 * time.Second
	LiveSendBuffer = 32
)
