package entities

import (
	"time"
)

type AlertType string

const (
	AlertTypeLowWater        AlertType = "LOW_WATER"
	AlertTypeLowMilk         AlertType = "LOW_MILK"
	AlertTypeLowBeans        AlertType = "LOW_BEANS"
	AlertTypeLowSugar        AlertType = "LOW_SUGAR"
	AlertTypeHighTemperature AlertType = "HIGH_TEMPERATURE"
	AlertTypeOutOfSupply     AlertType = "OUT_OF_SUPPLY"
)

func (t AlertType) String() string {
	return string(t)
}

// IsSupplyAlert reports whether alert is about consumables.
func (t AlertType) IsSupplyAlert() bool {
	switch t {
	case AlertTypeLowWater, AlertTypeLowMilk, AlertTypeLowBeans, AlertTypeLowSugar, AlertTypeOutOfSupply:
		return true
	default:
		return false
	}
}

type Alert struct {
	ID         string     `json:"id" cbor:"1,keyasint"`
	MachineID  int        `json:"machineId" cbor:"2,keyasint"`
	FacilityID FacilityID `json:"facilityId" cbor:"3,keyasint"`
	Type       AlertType  `json:"alertType" cbor:"4,keyasint"`
	Message    string     `json:"message" cbor:"5,keyasint"`
	Timestamp  time.Time  `json:"timestamp" cbor:"6,keyasint"`
}
