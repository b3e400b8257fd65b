package machinestate_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/machinestate"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

func testFleet() []entities.MachineAssignment {
	return []entities.MachineAssignment{
		{MachineID: 3, FacilityID: 2},
		{MachineID: 1, FacilityID: 1, Status: entities.MachineStatusOn},
		{MachineID: 2, FacilityID: 1, Status: entities.MachineStatusOff},
	}
}

func TestService_Init(t *testing.T) {
	t.Parallel()

	service := machinestate.NewService(testFleet())
	require.Equal(t, []int{1, 2, 3}, service.IDs())

	state, err := service.Get(3)
	require.NoError(t, err)
	assert.Equal(t, entities.MachineState{
		MachineID:   3,
		FacilityID:  2,
		Status:      entities.MachineStatusOn,
		Temperature: constants.InitialTemperature,
		WaterLevel:  100,
		MilkLevel:   100,
		BeansLevel:  100,
		SugarLevel:  100,
	}, state)

	state, err = service.Get(2)
	require.NoError(t, err)
	assert.Equal(t, entities.MachineStatusOff, state.Status)

	_, err = service.Get(42)
	require.ErrorIs(t, err, errs.ErrMachineNotFound)
}

func TestService_Advance(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		machineID     int
		fn            machinestate.AdvanceFunc
		expectedNext  func(prev entities.MachineState) entities.MachineState
		expectedBrew  entities.BrewType
		expectedError error
	}{
		{
			name:      "apply depletion",
			machineID: 1,
			fn: func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
				state.WaterLevel -= 6
				state.Temperature++
				return state, entities.BrewTypeAmericano
			},
			expectedNext: func(prev entities.MachineState) entities.MachineState {
				prev.WaterLevel = 94
				prev.Temperature = constants.InitialTemperature + 1
				return prev
			},
			expectedBrew: entities.BrewTypeAmericano,
		},
		{
			name:      "clamp out of range values",
			machineID: 1,
			fn: func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
				state.WaterLevel = -3
				state.MilkLevel = 140
				state.Temperature = 300
				return state, entities.BrewTypeNone
			},
			expectedNext: func(prev entities.MachineState) entities.MachineState {
				prev.WaterLevel = 0
				prev.MilkLevel = 100
				prev.Temperature = constants.MaxTemperature
				return prev
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name:      "identity fields are kept",
			machineID: 1,
			fn: func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
				state.MachineID = 99
				state.FacilityID = 99
				state.Status = ""
				return state, entities.BrewTypeNone
			},
			expectedNext: func(prev entities.MachineState) entities.MachineState {
				return prev
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name:      "unknown machine",
			machineID: 42,
			fn: func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
				return state, entities.BrewTypeNone
			},
			expectedError: errs.ErrMachineNotFound,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := machinestate.NewService(testFleet())

			prev, next, brewType, err := service.Advance(testCase.machineID, testCase.fn)
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedNext(prev), next)
			assert.Equal(t, testCase.expectedBrew, brewType)

			stored, err := service.Get(testCase.machineID)
			require.NoError(t, err)
			assert.Equal(t, next, stored)
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	t.Parallel()

	service := machinestate.NewService(testFleet())

	state, err := service.SetStatus(2, entities.MachineStatusOn)
	require.NoError(t, err)
	assert.True(t, state.IsOn())

	_, err = service.SetStatus(2, "BROKEN")
	require.ErrorIs(t, err, errs.ErrInvalidStatus)

	_, err = service.SetStatus(42, entities.MachineStatusOff)
	require.ErrorIs(t, err, errs.ErrMachineNotFound)
}

func TestService_ConcurrentAdvance(t *testing.T) {
	t.Parallel()

	service := machinestate.NewService(testFleet())

	var wg sync.WaitGroup
	for range 50 {
		for _, id := range service.IDs() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, _, err := service.Advance(id, func(state entities.MachineState) (entities.MachineState, entities.BrewType) {
					state.BeansLevel--
					return state, entities.BrewTypeNone
				})
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for _, state := range service.Snapshot() {
		assert.InDelta(t, 50.0, state.BeansLevel, 0.0001)
	}
}
