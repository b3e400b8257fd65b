package brew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/brew"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/brew/brew_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

// recipe indexes after sorting by name
const (
	idxAmericano = iota
	idxBlackCoffee
	idxCappuccino
	idxLatte
)

const (
	testMachineID = 1
	testTick      = uint64(5)
)

type serviceFields struct {
	random *brew_mocks.MockIRandomSource
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		random: brew_mocks.NewMockIRandomSource(t),
	}
}

func fullState() entities.MachineState {
	return entities.MachineState{
		MachineID:   testMachineID,
		FacilityID:  7,
		Status:      entities.MachineStatusOn,
		Temperature: 92,
		WaterLevel:  100,
		MilkLevel:   100,
		BeansLevel:  100,
		SugarLevel:  100,
	}
}

func lowState() entities.MachineState {
	state := fullState()
	state.WaterLevel = 5
	state.MilkLevel = 0
	state.BeansLevel = 4
	state.SugarLevel = 0.5
	return state
}

func expectDraws(f *serviceFields, temperatureDraw, recipeDraw int) {
	f.random.EXPECT().
		IntN(testMachineID, testTick, brew.PurposeTemperature, 2).
		Return(temperatureDraw).
		Times(1)

	f.random.EXPECT().
		IntN(testMachineID, testTick, brew.PurposeRecipe, 4).
		Return(recipeDraw).
		Times(1)
}

func TestService_Advance(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		state         func() entities.MachineState
		prepare       func(f *serviceFields)
		expectedState func(state entities.MachineState) entities.MachineState
		expectedBrew  entities.BrewType
	}{
		{
			name: "machine is off",
			state: func() entities.MachineState {
				state := fullState()
				state.Status = entities.MachineStatusOff
				return state
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				return state
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name:  "brew latte",
			state: fullState,
			prepare: func(f *serviceFields) {
				expectDraws(f, 1, idxLatte)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.Temperature = 93
				state.WaterLevel = 98
				state.MilkLevel = 94
				state.BeansLevel = 96
				state.SugarLevel = 99.5
				return state
			},
			expectedBrew: entities.BrewTypeLatte,
		},
		{
			name:  "brew black coffee",
			state: fullState,
			prepare: func(f *serviceFields) {
				expectDraws(f, 0, idxBlackCoffee)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.Temperature = 91
				state.WaterLevel = 92
				state.BeansLevel = 96
				return state
			},
			expectedBrew: entities.BrewTypeBlackCoffee,
		},
		{
			name:  "not enough water for black coffee",
			state: lowState,
			prepare: func(f *serviceFields) {
				expectDraws(f, 1, idxBlackCoffee)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.Temperature = 93
				return state
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name:  "not enough water for americano",
			state: lowState,
			prepare: func(f *serviceFields) {
				expectDraws(f, 1, idxAmericano)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.Temperature = 93
				return state
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name:  "no milk for cappuccino",
			state: lowState,
			prepare: func(f *serviceFields) {
				expectDraws(f, 0, idxCappuccino)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.Temperature = 91
				return state
			},
			expectedBrew: entities.BrewTypeNone,
		},
		{
			name: "temperature is clamped at max",
			state: func() entities.MachineState {
				state := fullState()
				state.Temperature = 110
				return state
			},
			prepare: func(f *serviceFields) {
				expectDraws(f, 1, idxAmericano)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				state.WaterLevel = 94
				state.BeansLevel = 96
				state.SugarLevel = 99.5
				return state
			},
			expectedBrew: entities.BrewTypeAmericano,
		},
		{
			name: "temperature is clamped at min",
			state: func() entities.MachineState {
				state := lowState()
				state.Temperature = 85
				return state
			},
			prepare: func(f *serviceFields) {
				expectDraws(f, 0, idxLatte)
			},
			expectedState: func(state entities.MachineState) entities.MachineState {
				return state
			},
			expectedBrew: entities.BrewTypeNone,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service, err := brew.NewService(entities.DefaultRecipes(), f.random)
			require.NoError(t, err)

			state := testCase.state()
			next, brewType := service.Advance(state, testTick)
			assert.Equal(t, testCase.expectedState(state), next)
			assert.Equal(t, testCase.expectedBrew, brewType)
		})
	}
}

func TestService_CanBrewAny(t *testing.T) {
	t.Parallel()

	service, err := brew.NewService(entities.DefaultRecipes(), brew.NewRandomSource())
	require.NoError(t, err)

	assert.True(t, service.CanBrewAny(fullState()))
	assert.False(t, service.CanBrewAny(lowState()))
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := brew.NewService(nil, brew.NewRandomSource())
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	service, err := brew.NewService([]entities.Recipe{
		{Name: entities.BrewTypeLatte},
		{Name: entities.BrewTypeAmericano},
	}, brew.NewRandomSource())
	require.NoError(t, err)

	recipes := service.Recipes()
	require.Len(t, recipes, 2)
	assert.Equal(t, entities.BrewTypeAmericano, recipes[0].Name)
	assert.Equal(t, entities.BrewTypeLatte, recipes[1].Name)
}

func TestService_Replay(t *testing.T) {
	t.Parallel()

	first, err := brew.NewService(entities.DefaultRecipes(), brew.NewHashedSource(42))
	require.NoError(t, err)

	second, err := brew.NewService(entities.DefaultRecipes(), brew.NewHashedSource(42))
	require.NoError(t, err)

	a, b := fullState(), fullState()
	for tick := range uint64(100) {
		var brewA, brewB entities.BrewType
		a, brewA = first.Advance(a, tick)
		b, brewB = second.Advance(b, tick)
		require.Equal(t, a, b)
		require.Equal(t, brewA, brewB)
	}
}

func TestService_SuppliesStayInRange(t *testing.T) {
	t.Parallel()

	sources := map[string]brew.IRandomSource{
		"random": brew.NewRandomSource(),
		"hashed": brew.NewHashedSource(7),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			service, err := brew.NewService(entities.DefaultRecipes(), source)
			require.NoError(t, err)

			state := fullState()
			for tick := range uint64(500) {
				prev := state
				state, _ = service.Advance(state, tick)

				for _, level := range []float64{state.WaterLevel, state.MilkLevel, state.BeansLevel, state.SugarLevel} {
					require.GreaterOrEqual(t, level, 0.0)
					require.LessOrEqual(t, level, 100.0)
				}
				require.LessOrEqual(t, state.WaterLevel, prev.WaterLevel)
				require.LessOrEqual(t, state.MilkLevel, prev.MilkLevel)
				require.LessOrEqual(t, state.BeansLevel, prev.BeansLevel)
				require.LessOrEqual(t, state.SugarLevel, prev.SugarLevel)
				require.InDelta(t, prev.Temperature, state.Temperature, 1)
				require.GreaterOrEqual(t, state.Temperature, 85)
				require.LessOrEqual(t, state.Temperature, 110)
			}

			// 500 ticks use up beans of any recipe mix
			assert.False(t, service.CanBrewAny(state))
		})
	}
}
