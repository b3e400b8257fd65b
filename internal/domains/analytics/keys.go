package analytics

import (
	"fmt"
	"time"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

const (
	telemetryPrefix = "telemetry:"
	machinePrefix   = "machine:"
	alertPrefix     = "alert:"
)

// telemetry:<facility>:<unix nano>:<machine>
func telemetryKey(message entities.TelemetryMessage) []byte {
	return []byte(fmt.Sprintf("%s%d:%020d:%d", telemetryPrefix, message.FacilityID, message.Timestamp.UnixNano(), message.MachineID))
}

// machine:<facility>:<machine>
func machineKey(facilityID entities.FacilityID, machineID int) []byte {
	return []byte(fmt.Sprintf("%s%d:%010d", machinePrefix, facilityID, machineID))
}

// alert:<facility>:<unix nano>:<id>
func alertKey(alert entities.Alert) []byte {
	return []byte(fmt.Sprintf("%s%d:%020d:%s", alertPrefix, alert.FacilityID, alert.Timestamp.UnixNano(), alert.ID))
}

func facilityPrefix(prefix string, facilityID entities.FacilityID) []byte {
	return []byte(fmt.Sprintf("%s%d:", prefix, facilityID))
}

// seekKey returns first key of facility range at or after since.
func seekKey(prefix string, facilityID entities.FacilityID, since time.Time) []byte {
	return []byte(fmt.Sprintf("%s%d:%020d", prefix, facilityID, max(since.UnixNano(), 0)))
}
