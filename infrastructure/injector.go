package infrastructure

import (
	"fmt"
	"os"

	"github.com/Fivegen-LLC/sdwan-lib/pkg/badgerutils"
	"github.com/dgraph-io/badger/v4"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/brew"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/debug"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/simulator"
	"github.com/Fivegen-LLC/coffee-fleet/internal/environment"
)

type IInjector interface {
	// MQ handlers.

	InjectSimulatorMQHandler() *simulator.MQHandler
	InjectDebugMQHandler() *debug.MQHandler
}

type Kernel struct {
	env environment.Environment

	DB         *badger.DB
	BrewEngine *brew.Service
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	if err = os.MkdirAll(env.Store.Path, constants.FilePerm); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	options := badger.DefaultOptions(env.Store.Path).
		WithLogger(badgerutils.NewLogger()).
		WithMemTableSize(64 << 17) // ~8MB

	if k.DB, err = badger.Open(options); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	var random brew.IRandomSource = brew.NewRandomSource()
	if env.Simulator.Seed != 0 {
		random = brew.NewHashedSource(env.Simulator.Seed)
	}

	if k.BrewEngine, err = brew.NewService(env.Simulator.Recipes, random); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

// MQ handlers.

func (k *Kernel) InjectSimulatorMQHandler() *simulator.MQHandler {
	return simulator.NewMQHandler(
		k.InjectSimulatorService(),
	)
}

func (k *Kernel) InjectDebugMQHandler() *debug.MQHandler {
	return debug.NewMQHandler()
}
