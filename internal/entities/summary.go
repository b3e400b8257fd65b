package entities

import (
	"time"
)

type FacilitySummary struct {
	FacilityID     FacilityID `json:"facilityId"`
	TotalMachines  int        `json:"totalMachines"`
	ActiveMachines int        `json:"activeMachines"`
	TotalAlerts    int        `json:"totalAlerts"`
	BrewsToday     int        `json:"brewsToday"`
}

type FleetSummary struct {
	TotalFacilities int               `json:"totalFacilities"`
	TotalMachines   int               `json:"totalMachines"`
	ActiveMachines  int               `json:"activeMachines"`
	TotalAlerts     int               `json:"totalAlerts"`
	BrewsToday      int               `json:"brewsToday"`
	BrewsByType     map[BrewType]int  `json:"brewsByType"`
	Facilities      []FacilitySummary `json:"facilities"`
	Since           time.Time         `json:"since"`
}
