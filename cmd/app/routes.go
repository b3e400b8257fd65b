package main

import (
	"github.com/nats-io/nats.go"

	"github.com/Fivegen-LLC/coffee-fleet/infrastructure"
	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
)

func getMQRoutes(injector infrastructure.IInjector) map[string]func(m *nats.Msg) (resp any) {
	simulatorMQHandler := injector.InjectSimulatorMQHandler()
	debugMQHandler := injector.InjectDebugMQHandler()

	return map[string]func(m *nats.Msg) (resp any){
		constants.MQSimulatorGetState:    simulatorMQHandler.GetState,
		constants.MQSimulatorGetFleet:    simulatorMQHandler.GetFleet,
		constants.MQSimulatorSetStatus:   simulatorMQHandler.SetStatus,
		constants.MQSimulatorDumpProfile: debugMQHandler.DumpProfile,
	}
}
