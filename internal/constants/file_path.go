package constants

const (
	DefaultLogfilePath = "/var/log/coffee-fleet/simulator.log"
	DefaultStorePath   = "/var/lib/coffee-fleet/analytics"
)
