package alert_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/alert"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

var testTimestamp = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func state(water, milk, beans, sugar float64, temperature int) entities.MachineState {
	return entities.MachineState{
		MachineID:   9,
		FacilityID:  3,
		Status:      entities.MachineStatusOn,
		Temperature: temperature,
		WaterLevel:  water,
		MilkLevel:   milk,
		BeansLevel:  beans,
		SugarLevel:  sugar,
	}
}

func TestService_Evaluate(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		transition    alert.Transition
		expectedTypes []entities.AlertType
	}{
		{
			name: "nothing crossed",
			transition: alert.Transition{
				Prev:        state(80, 80, 80, 80, 92),
				Next:        state(74, 80, 76, 79.5, 93),
				PrevCanBrew: true,
				NextCanBrew: true,
			},
		},
		{
			name: "water and beans crossed low threshold",
			transition: alert.Transition{
				Prev:        state(24, 50, 22, 50, 92),
				Next:        state(18, 50, 18, 49.5, 92),
				PrevCanBrew: true,
				NextCanBrew: true,
			},
			expectedTypes: []entities.AlertType{entities.AlertTypeLowWater, entities.AlertTypeLowBeans},
		},
		{
			name: "already low is not repeated",
			transition: alert.Transition{
				Prev:        state(18, 50, 50, 50, 92),
				Next:        state(12, 50, 46, 49.5, 92),
				PrevCanBrew: true,
				NextCanBrew: true,
			},
		},
		{
			name: "temperature crossed high threshold",
			transition: alert.Transition{
				Prev:        state(50, 50, 50, 50, 105),
				Next:        state(50, 50, 50, 50, 106),
				PrevCanBrew: true,
				NextCanBrew: true,
			},
			expectedTypes: []entities.AlertType{entities.AlertTypeHighTemperature},
		},
		{
			name: "out of supply",
			transition: alert.Transition{
				Prev:        state(9, 0, 8, 1, 92),
				Next:        state(1, 0, 4, 1, 92),
				PrevCanBrew: true,
				NextCanBrew: false,
			},
			expectedTypes: []entities.AlertType{entities.AlertTypeOutOfSupply},
		},
		{
			name: "still out of supply",
			transition: alert.Transition{
				Prev:        state(1, 0, 4, 1, 92),
				Next:        state(1, 0, 4, 1, 91),
				PrevCanBrew: false,
				NextCanBrew: false,
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := alert.NewService(alert.Thresholds{
				LowSupplyLevel:  20,
				HighTemperature: 105,
			})

			transition := testCase.transition
			transition.Timestamp = testTimestamp

			alerts := service.Evaluate(transition)
			require.Len(t, alerts, len(testCase.expectedTypes))
			assert.ElementsMatch(t, testCase.expectedTypes, lo.Map(alerts, func(a entities.Alert, _ int) entities.AlertType {
				return a.Type
			}))

			for _, a := range alerts {
				assert.NotEmpty(t, a.ID)
				assert.Equal(t, 9, a.MachineID)
				assert.Equal(t, entities.FacilityID(3), a.FacilityID)
				assert.Equal(t, testTimestamp, a.Timestamp)
				assert.NotEmpty(t, a.Message)
			}
		})
	}
}
