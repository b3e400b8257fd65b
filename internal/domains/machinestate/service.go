package machinestate

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

// AdvanceFunc computes next machine state from current one.
type AdvanceFunc func(state entities.MachineState) (next entities.MachineState, brewType entities.BrewType)

type slot struct {
	mx    sync.Mutex
	state entities.MachineState
}

// Service owns machine states. Slot map is built once and never mutated, each slot is guarded by own mutex.
type Service struct {
	slots map[int]*slot
	ids   []int
}

func NewService(fleet []entities.MachineAssignment) *Service {
	slots := make(map[int]*slot, len(fleet))
	for _, assignment := range fleet {
		status := assignment.Status
		if lo.IsEmpty(status) {
			status = entities.MachineStatusOn
		}

		slots[assignment.MachineID] = &slot{
			state: NewMachineState(assignment.MachineID, assignment.FacilityID, status),
		}
	}

	ids := lo.Keys(slots)
	slices.Sort(ids)

	return &Service{
		slots: slots,
		ids:   ids,
	}
}

// NewMachineState returns state of freshly installed machine.
func NewMachineState(machineID int, facilityID entities.FacilityID, status entities.MachineStatus) entities.MachineState {
	return entities.MachineState{
		MachineID:   machineID,
		FacilityID:  facilityID,
		Status:      status,
		Temperature: constants.InitialTemperature,
		WaterLevel:  constants.FullSupplyLevel,
		MilkLevel:   constants.FullSupplyLevel,
		BeansLevel:  constants.FullSupplyLevel,
		SugarLevel:  constants.FullSupplyLevel,
	}
}

// IDs returns machine ids in ascending order.
func (s *Service) IDs() []int {
	return slices.Clone(s.ids)
}

// Get returns copy of current machine state.
func (s *Service) Get(machineID int) (state entities.MachineState, err error) {
	sl, ok := s.slots[machineID]
	if !ok {
		return state, fmt.Errorf("Get: machine %d: %w", machineID, errs.ErrMachineNotFound)
	}

	sl.mx.Lock()
	defer sl.mx.Unlock()

	return sl.state, nil
}

// Snapshot returns copies of all machine states ordered by id.
func (s *Service) Snapshot() []entities.MachineState {
	states := make([]entities.MachineState, 0, len(s.ids))
	for _, id := range s.ids {
		sl := s.slots[id]
		sl.mx.Lock()
		states = append(states, sl.state)
		sl.mx.Unlock()
	}

	return states
}

// Advance applies fn to machine state under slot lock and stores the result.
func (s *Service) Advance(machineID int, fn AdvanceFunc) (prev, next entities.MachineState, brewType entities.BrewType, err error) {
	sl, ok := s.slots[machineID]
	if !ok {
		return prev, next, brewType, fmt.Errorf("Advance: machine %d: %w", machineID, errs.ErrMachineNotFound)
	}

	sl.mx.Lock()
	defer sl.mx.Unlock()

	prev = sl.state
	next, brewType = fn(prev)

	// identity fields are owned by the store
	next.MachineID = prev.MachineID
	next.FacilityID = prev.FacilityID
	if !next.Status.IsValid() {
		next.Status = prev.Status
	}

	sl.state = sanitize(next)
	return prev, sl.state, brewType, nil
}

// SetStatus switches machine power.
func (s *Service) SetStatus(machineID int, status entities.MachineStatus) (state entities.MachineState, err error) {
	if !status.IsValid() {
		return state, fmt.Errorf("SetStatus: status %q: %w", status, errs.ErrInvalidStatus)
	}

	sl, ok := s.slots[machineID]
	if !ok {
		return state, fmt.Errorf("SetStatus: machine %d: %w", machineID, errs.ErrMachineNotFound)
	}

	sl.mx.Lock()
	defer sl.mx.Unlock()

	sl.state.Status = status
	return sl.state, nil
}

func sanitize(state entities.MachineState) entities.MachineState {
	state.Temperature = min(max(state.Temperature, constants.MinTemperature), constants.MaxTemperature)
	state.WaterLevel = clampLevel(state.WaterLevel)
	state.MilkLevel = clampLevel(state.MilkLevel)
	state.BeansLevel = clampLevel(state.BeansLevel)
	state.SugarLevel = clampLevel(state.SugarLevel)
	return state
}

func clampLevel(level float64) float64 {
	return min(max(level, constants.EmptySupplyLevel), constants.FullSupplyLevel)
}
