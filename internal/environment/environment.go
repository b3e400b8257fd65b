package environment

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type Environment struct {
	App       App
	Simulator Simulator
	Broker    Broker
	Store     Store
	API       API
}

type App struct {
	LogfilePath  string `validate:"required"`
	LogLevel     string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	ControlMQURL string
}

type Simulator struct {
	TickInterval        time.Duration                `validate:"gt=0"`
	TickParallelism     int                          `validate:"gte=1"`
	Seed                uint64                       `validate:"-"`
	LowSupplyLevel      float64                      `validate:"gte=0,lte=100"`
	HighTemperature     int                          `validate:"gte=85,lte=110"`
	Fleet               []entities.MachineAssignment `validate:"required,min=1,unique=MachineID,dive"`
	Recipes             []entities.Recipe            `validate:"required,min=1,unique=Name,dive"`
	FleetConfigPath     string                       `validate:"omitempty,file"`
	Facilities          int                          `validate:"gte=1"`
	MachinesPerFacility int                          `validate:"gte=1"`
}

type Broker struct {
	URL            string        `validate:"required,url"`
	User           string        `validate:"required_with=Password"`
	Password       string        `validate:"-"`
	Stream         string        `validate:"required,alphanumunicode"`
	PublishTimeout time.Duration `validate:"gt=0"`
	ConnectTimeout time.Duration `validate:"gt=0"`
}

type Store struct {
	Path         string        `validate:"required"`
	Retention    time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

type API struct {
	Addr      string `validate:"required"`
	JWTSecret string `validate:"required,min=16"`
}

// fleetFile is layout of optional YAML fleet config.
type fleetFile struct {
	Fleet   []entities.MachineAssignment `mapstructure:"fleet"`
	Recipes []entities.Recipe            `mapstructure:"recipes"`
}

func New() (e Environment, err error) {
	v := viper.New()
	v.AutomaticEnv()

	// app settings
	e.App.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.App.LogfilePath) {
		e.App.LogfilePath = constants.DefaultLogfilePath
	}
	e.App.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.App.LogLevel) {
		e.App.LogLevel = "info"
	}
	e.App.ControlMQURL = v.GetString("CONTROL_MQ_URL")
	e.Simulator.FleetConfigPath = v.GetString("FLEET_CONFIG")

	// simulator settings
	v.SetEnvPrefix("SIM")
	v.SetDefault("TICK_INTERVAL", constants.DefaultTickInterval)
	v.SetDefault("TICK_PARALLELISM", constants.DefaultTickParallelism)
	v.SetDefault("FACILITIES", constants.DefaultFacilities)
	v.SetDefault("MACHINES_PER_FACILITY", constants.DefaultMachinesPerFacility)
	v.SetDefault("LOW_SUPPLY_THRESHOLD", constants.DefaultLowSupplyLevel)
	v.SetDefault("HIGH_TEMPERATURE", constants.DefaultHighTemperature)
	e.Simulator.TickInterval = v.GetDuration("TICK_INTERVAL")
	e.Simulator.TickParallelism = v.GetInt("TICK_PARALLELISM")
	e.Simulator.Seed = v.GetUint64("SEED")
	e.Simulator.Facilities = v.GetInt("FACILITIES")
	e.Simulator.MachinesPerFacility = v.GetInt("MACHINES_PER_FACILITY")
	e.Simulator.LowSupplyLevel = v.GetFloat64("LOW_SUPPLY_THRESHOLD")
	e.Simulator.HighTemperature = v.GetInt("HIGH_TEMPERATURE")

	// broker settings
	v.SetEnvPrefix("BROKER")
	v.SetDefault("URL", nats.DefaultURL)
	v.SetDefault("STREAM", constants.DefaultBrokerStream)
	v.SetDefault("PUBLISH_TIMEOUT", constants.DefaultPublishTimeout)
	v.SetDefault("CONNECT_TIMEOUT", constants.DefaultConnectTimeout)
	e.Broker.URL = v.GetString("URL")
	e.Broker.User = v.GetString("USER")
	e.Broker.Password = v.GetString("PASSWORD")
	e.Broker.Stream = v.GetString("STREAM")
	e.Broker.PublishTimeout = v.GetDuration("PUBLISH_TIMEOUT")
	e.Broker.ConnectTimeout = v.GetDuration("CONNECT_TIMEOUT")

	// analytics store settings
	v.SetEnvPrefix("STORE")
	v.SetDefault("RETENTION", constants.DefaultStoreRetention)
	v.SetDefault("WRITE_TIMEOUT", constants.DefaultStoreWriteTimeout)
	e.Store.Path = v.GetString("PATH")
	if lo.IsEmpty(e.Store.Path) {
		e.Store.Path = constants.DefaultStorePath
	}
	e.Store.Retention = v.GetDuration("RETENTION")
	e.Store.WriteTimeout = v.GetDuration("WRITE_TIMEOUT")

	// dashboard api settings
	v.SetEnvPrefix("API")
	e.API.Addr = v.GetString("ADDR")
	if lo.IsEmpty(e.API.Addr) {
		e.API.Addr = constants.DefaultAPIAddr
	}
	e.API.JWTSecret = v.GetString("JWT_SECRET")

	if err = e.loadFleet(); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	if err = e.Validate(); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

// Validate checks assembled environment.
func (e Environment) Validate() error {
	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrInvalidConfig, err)
	}

	return nil
}

func (e *Environment) loadFleet() error {
	e.Simulator.Fleet = DefaultFleet(e.Simulator.Facilities, e.Simulator.MachinesPerFacility)
	e.Simulator.Recipes = entities.DefaultRecipes()
	if lo.IsEmpty(e.Simulator.FleetConfigPath) {
		return nil
	}

	file, err := ReadFleetFile(e.Simulator.FleetConfigPath)
	if err != nil {
		return fmt.Errorf("loadFleet: %w", err)
	}

	if len(file.Fleet) > 0 {
		e.Simulator.Fleet = file.Fleet
	}
	if len(file.Recipes) > 0 {
		e.Simulator.Recipes = file.Recipes
	}

	return nil
}

// ReadFleetFile reads fleet mapping and recipe table from YAML file.
func ReadFleetFile(path string) (file fleetFile, err error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		return file, fmt.Errorf("ReadFleetFile: %w", err)
	}

	if err = v.Unmarshal(&file); err != nil {
		return file, fmt.Errorf("ReadFleetFile: %w", err)
	}

	for i := range file.Fleet {
		if lo.IsEmpty(file.Fleet[i].Status) {
			file.Fleet[i].Status = entities.MachineStatusOn
		}
	}

	return file, nil
}

// DefaultFleet spreads machines with ids starting from 1 over facilities with ids starting from 1.
func DefaultFleet(facilities, machinesPerFacility int) []entities.MachineAssignment {
	fleet := make([]entities.MachineAssignment, 0, facilities*machinesPerFacility)
	for id := 1; id <= facilities*machinesPerFacility; id++ {
		fleet = append(fleet, entities.MachineAssignment{
			MachineID:  id,
			FacilityID: entities.FacilityID((id-1)/machinesPerFacility + 1),
			Status:     entities.MachineStatusOn,
		})
	}

	return fleet
}

func (e App) IsDebug() bool {
	return e.LogLevel == "debug"
}
