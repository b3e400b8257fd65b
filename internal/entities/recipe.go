package entities

type BrewType string

const (
	BrewTypeNone        BrewType = "NONE"
	BrewTypeAmericano   BrewType = "AMERICANO"
	BrewTypeLatte       BrewType = "LATTE"
	BrewTypeBlackCoffee BrewType = "BLACK_COFFEE"
	BrewTypeCappuccino  BrewType = "CAPPUCCINO"
)

func (b BrewType) String() string {
	return string(b)
}

func (b BrewType) IsBrewed() bool {
	return b != "" && b != BrewTypeNone
}

// Recipe is named brew type with fixed resource costs.
type Recipe struct {
	Name  BrewType `mapstructure:"name" validate:"required"`
	Water float64  `mapstructure:"water" validate:"gte=0,lte=100"`
	Milk  float64  `mapstructure:"milk" validate:"gte=0,lte=100"`
	Beans float64  `mapstructure:"beans" validate:"gte=0,lte=100"`
	Sugar float64  `mapstructure:"sugar" validate:"gte=0,lte=100"`
}

func (r Recipe) Cost() Supplies {
	return Supplies{
		Water: r.Water,
		Milk:  r.Milk,
		Beans: r.Beans,
		Sugar: r.Sugar,
	}
}

// DefaultRecipes returns built-in recipe cost table.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{Name: BrewTypeAmericano, Water: 6, Milk: 0, Beans: 4, Sugar: 0.5},
		{Name: BrewTypeLatte, Water: 2, Milk: 6, Beans: 4, Sugar: 0.5},
		{Name: BrewTypeBlackCoffee, Water: 8, Milk: 0, Beans: 4, Sugar: 0},
		{Name: BrewTypeCappuccino, Water: 3, Milk: 3, Beans: 4, Sugar: 0.5},
	}
}
