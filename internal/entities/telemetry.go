package entities

import (
	"time"
)

// TelemetryMessage is snapshot of machine state produced once per tick.
type TelemetryMessage struct {
	MachineID   int           `json:"machineId" cbor:"1,keyasint"`
	FacilityID  FacilityID    `json:"facilityId" cbor:"2,keyasint"`
	Status      MachineStatus `json:"status" cbor:"3,keyasint"`
	Temperature int           `json:"temperature" cbor:"4,keyasint"`
	WaterLevel  float64       `json:"waterLevel" cbor:"5,keyasint"`
	MilkLevel   float64       `json:"milkLevel" cbor:"6,keyasint"`
	BeansLevel  float64       `json:"beansLevel" cbor:"7,keyasint"`
	SugarLevel  float64       `json:"sugarLevel" cbor:"8,keyasint"`
	BrewType    BrewType      `json:"brewType" cbor:"9,keyasint"`
	Timestamp   time.Time     `json:"timestamp" cbor:"10,keyasint"`
}

func NewTelemetryMessage(state MachineState, brewType BrewType, timestamp time.Time) TelemetryMessage {
	return TelemetryMessage{
		MachineID:   state.MachineID,
		FacilityID:  state.FacilityID,
		Status:      state.Status,
		Temperature: state.Temperature,
		WaterLevel:  state.WaterLevel,
		MilkLevel:   state.MilkLevel,
		BeansLevel:  state.BeansLevel,
		SugarLevel:  state.SugarLevel,
		BrewType:    brewType,
		Timestamp:   timestamp.UTC(),
	}
}

// State returns machine state part of the message.
func (m TelemetryMessage) State() MachineState {
	return MachineState{
		MachineID:   m.MachineID,
		FacilityID:  m.FacilityID,
		Status:      m.Status,
		Temperature: m.Temperature,
		WaterLevel:  m.WaterLevel,
		MilkLevel:   m.MilkLevel,
		BeansLevel:  m.BeansLevel,
		SugarLevel:  m.SugarLevel,
	}
}

// UsageRow is one brew event in facility usage history.
type UsageRow struct {
	MachineID int       `json:"machineId"`
	BrewType  BrewType  `json:"brewType"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
