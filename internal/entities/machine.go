package entities

type MachineStatus string

const (
	MachineStatusOn  MachineStatus = "ON"
	MachineStatusOff MachineStatus = "OFF"
)

func (s MachineStatus) String() string {
	return string(s)
}

func (s MachineStatus) IsValid() bool {
	return s == MachineStatusOn || s == MachineStatusOff
}

// MachineState is the simulated physical state of a single coffee machine.
type MachineState struct {
	MachineID   int           `json:"machineId" cbor:"1,keyasint"`
	FacilityID  FacilityID    `json:"facilityId" cbor:"2,keyasint"`
	Status      MachineStatus `json:"status" cbor:"3,keyasint"`
	Temperature int           `json:"temperature" cbor:"4,keyasint"`
	WaterLevel  float64       `json:"waterLevel" cbor:"5,keyasint"`
	MilkLevel   float64       `json:"milkLevel" cbor:"6,keyasint"`
	BeansLevel  float64       `json:"beansLevel" cbor:"7,keyasint"`
	SugarLevel  float64       `json:"sugarLevel" cbor:"8,keyasint"`
}

func (s MachineState) IsOn() bool {
	return s.Status == MachineStatusOn
}

// Supplies returns supply levels in recipe cost order.
func (s MachineState) Supplies() Supplies {
	return Supplies{
		Water: s.WaterLevel,
		Milk:  s.MilkLevel,
		Beans: s.BeansLevel,
		Sugar: s.SugarLevel,
	}
}

// WithSupplies returns copy of state with replaced supply levels.
func (s MachineState) WithSupplies(supplies Supplies) MachineState {
	s.WaterLevel = supplies.Water
	s.MilkLevel = supplies.Milk
	s.BeansLevel = supplies.Beans
	s.SugarLevel = supplies.Sugar
	return s
}

// MachineAssignment binds machine to facility in fleet configuration.
type MachineAssignment struct {
	MachineID  int           `mapstructure:"machineId" validate:"required,gt=0"`
	FacilityID FacilityID    `mapstructure:"facilityId" validate:"required,gt=0"`
	Status     MachineStatus `mapstructure:"status" validate:"omitempty,oneof=ON OFF"`
}

// Supplies holds four consumable levels (or four recipe costs).
type Supplies struct {
	Water float64 `json:"water" cbor:"1,keyasint"`
	Milk  float64 `json:"milk" cbor:"2,keyasint"`
	Beans float64 `json:"beans" cbor:"3,keyasint"`
	Sugar float64 `json:"sugar" cbor:"4,keyasint"`
}

// Covers reports whether every level is at least the corresponding cost.
func (s Supplies) Covers(cost Supplies) bool {
	return s.Water >= cost.Water &&
		s.Milk >= cost.Milk &&
		s.Beans >= cost.Beans &&
		s.Sugar >= cost.Sugar
}

// Subtract deducts costs, each level floored at 0.
func (s Supplies) Subtract(cost Supplies) Supplies {
	return Supplies{
		Water: max(s.Water-cost.Water, 0),
		Milk:  max(s.Milk-cost.Milk, 0),
		Beans: max(s.Beans-cost.Beans, 0),
		Sugar: max(s.Sugar-cost.Sugar, 0),
	}
}
