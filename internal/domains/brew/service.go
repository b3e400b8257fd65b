package brew

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type (
	IRandomSource interface {
		// IntN returns value in [0, n).
		IntN(machineID int, tick uint64, purpose Purpose, n int) (value int)
	}
)

type Service struct {
	recipes []entities.Recipe
	random  IRandomSource
}

func NewService(recipes []entities.Recipe, random IRandomSource) (*Service, error) {
	if len(recipes) == 0 {
		return nil, fmt.Errorf("NewService: empty recipe table: %w", errs.ErrInvalidConfig)
	}

	// seeded draws pick recipe by index, table order must not depend on config order
	sorted := slices.Clone(recipes)
	slices.SortFunc(sorted, func(a, b entities.Recipe) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})

	return &Service{
		recipes: sorted,
		random:  random,
	}, nil
}

// Recipes returns recipe table in selection order.
func (s *Service) Recipes() []entities.Recipe {
	return slices.Clone(s.recipes)
}

// Advance computes machine state after one tick and reports brewed recipe.
func (s *Service) Advance(state entities.MachineState, tick uint64) (next entities.MachineState, brewType entities.BrewType) {
	if !state.IsOn() {
		return state, entities.BrewTypeNone
	}

	next = state
	next.Temperature = s.nudgeTemperature(state, tick)

	recipe := s.recipes[s.random.IntN(state.MachineID, tick, PurposeRecipe, len(s.recipes))]
	supplies := state.Supplies()
	if !supplies.Covers(recipe.Cost()) {
		return next, entities.BrewTypeNone
	}

	return next.WithSupplies(supplies.Subtract(recipe.Cost())), recipe.Name
}

// CanBrewAny reports whether at least one recipe is affordable with current supplies.
func (s *Service) CanBrewAny(state entities.MachineState) bool {
	supplies := state.Supplies()
	for _, recipe := range s.recipes {
		if supplies.Covers(recipe.Cost()) {
			return true
		}
	}

	return false
}

func (s *Service) nudgeTemperature(state entities.MachineState, tick uint64) int {
	delta := 1
	if s.random.IntN(state.MachineID, tick, PurposeTemperature, 2) == 0 {
		delta = -1
	}

	return min(max(state.Temperature+delta, constants.MinTemperature), constants.MaxTemperature)
}
