package constants

import (
	"fmt"
	"strings"
	"time"
)

const (
	// in requests.
	MQSimulatorGetState    = "simulator.get_state"
	MQSimulatorGetFleet    = "simulator.get_fleet"
	MQSimulatorSetStatus   = "simulator.set_status"
	MQSimulatorDumpProfile = "simulator.debug.dump_profile"
)

const (
	DefaultBrokerStream   = "COFFEEMACHINE"
	TelemetrySubjects     = "coffeemachine.*.data"
	StreamDuplicateWindow = 2 * time.Minute
)

// TelemetryTopic returns canonical per-machine topic name.
func TelemetryTopic(machineID int) string {
	return fmt.Sprintf("coffeemachine/%d/data", machineID)
}

// TopicToSubject maps slash separated topic to NATS subject tokens.
func TopicToSubject(topic string) string {
	return strings.ReplaceAll(topic, "/", ".")
}
