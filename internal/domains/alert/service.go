package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

type Thresholds struct {
	LowSupplyLevel  float64
	HighTemperature int
}

// Transition is one machine state change produced by a tick.
type Transition struct {
	Prev        entities.MachineState
	Next        entities.MachineState
	PrevCanBrew bool
	NextCanBrew bool
	Timestamp   time.Time
}

// Service raises alerts on threshold crossings only, a level staying below threshold is reported once.
type Service struct {
	thresholds Thresholds
}

func NewService(thresholds Thresholds) *Service {
	return &Service{
		thresholds: thresholds,
	}
}

func (s *Service) Evaluate(transition Transition) (alerts []entities.Alert) {
	prev, next := transition.Prev, transition.Next

	supplies := []struct {
		alertType  entities.AlertType
		name       string
		prev, next float64
	}{
		{entities.AlertTypeLowWater, "water", prev.WaterLevel, next.WaterLevel},
		{entities.AlertTypeLowMilk, "milk", prev.MilkLevel, next.MilkLevel},
		{entities.AlertTypeLowBeans, "beans", prev.BeansLevel, next.BeansLevel},
		{entities.AlertTypeLowSugar, "sugar", prev.SugarLevel, next.SugarLevel},
	}

	for _, supply := range supplies {
		if supply.prev >= s.thresholds.LowSupplyLevel && supply.next < s.thresholds.LowSupplyLevel {
			alerts = append(alerts, s.newAlert(transition, supply.alertType,
				fmt.Sprintf("%s level is low: %.1f%%", supply.name, supply.next)))
		}
	}

	if prev.Temperature <= s.thresholds.HighTemperature && next.Temperature > s.thresholds.HighTemperature {
		alerts = append(alerts, s.newAlert(transition, entities.AlertTypeHighTemperature,
			fmt.Sprintf("temperature is high: %d°C", next.Temperature)))
	}

	if transition.PrevCanBrew && !transition.NextCanBrew {
		alerts = append(alerts, s.newAlert(transition, entities.AlertTypeOutOfSupply,
			"machine cannot brew any recipe"))
	}

	return alerts
}

func (s *Service) newAlert(transition Transition, alertType entities.AlertType, message string) entities.Alert {
	return entities.Alert{
		ID:         uuid.NewString(),
		MachineID:  transition.Next.MachineID,
		FacilityID: transition.Next.FacilityID,
		Type:       alertType,
		Message:    message,
		Timestamp:  transition.Timestamp.UTC(),
	}
}
