package infrastructure

import (
	"net/http"
	"sync"

	"github.com/Fivegen-LLC/sdwan-lib/pkg/mq"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/alert"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/analytics"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/authz"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/broker"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/dashboard"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/identity"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/live"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/machinestate"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/metrics"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/simulator"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/telemetry"
)

var (
	metricsService     *metrics.Service
	metricsServiceOnce sync.Once
)

func (k *Kernel) InjectMetricsService() *metrics.Service {
	metricsServiceOnce.Do(func() {
		metricsService = metrics.NewService()
	})

	return metricsService
}

var (
	stateService     *machinestate.Service
	stateServiceOnce sync.Once
)

func (k *Kernel) InjectStateService() *machinestate.Service {
	stateServiceOnce.Do(func() {
		stateService = machinestate.NewService(
			k.env.Simulator.Fleet,
		)
	})

	return stateService
}

var (
	alertService     *alert.Service
	alertServiceOnce sync.Once
)

func (k *Kernel) InjectAlertService() *alert.Service {
	alertServiceOnce.Do(func() {
		alertService = alert.NewService(alert.Thresholds{
			LowSupplyLevel:  k.env.Simulator.LowSupplyLevel,
			HighTemperature: k.env.Simulator.HighTemperature,
		})
	})

	return alertService
}

var (
	analyticsService     *analytics.Service
	analyticsServiceOnce sync.Once
)

func (k *Kernel) InjectAnalyticsService() *analytics.Service {
	analyticsServiceOnce.Do(func() {
		analyticsService = analytics.NewService(
			k.DB,
			k.env.Store.Retention,
		)
	})

	return analyticsService
}

var (
	brokerService     *broker.Service
	brokerServiceOnce sync.Once
)

func (k *Kernel) InjectBrokerService() *broker.Service {
	brokerServiceOnce.Do(func() {
		brokerService = broker.NewService(
			broker.NewFactory(k.env.Broker),
		)
	})

	return brokerService
}

var (
	telemetryService     *telemetry.Service
	telemetryServiceOnce sync.Once
)

func (k *Kernel) InjectTelemetryService() *telemetry.Service {
	telemetryServiceOnce.Do(func() {
		telemetryService = telemetry.NewService(
			k.InjectBrokerService(),
			k.InjectAnalyticsService(),
			k.InjectMetricsService(),
			k.env.Broker.PublishTimeout,
			k.env.Store.WriteTimeout,
		)
	})

	return telemetryService
}

var (
	liveHub     *live.Hub
	liveHubOnce sync.Once
)

func (k *Kernel) InjectLiveHub() *live.Hub {
	liveHubOnce.Do(func() {
		liveHub = live.NewHub(
			k.InjectMetricsService(),
		)
	})

	return liveHub
}

var (
	simulatorService     *simulator.Service
	simulatorServiceOnce sync.Once
)

func (k *Kernel) InjectSimulatorService() *simulator.Service {
	simulatorServiceOnce.Do(func() {
		simulatorService = simulator.NewService(
			k.InjectStateService(),
			k.BrewEngine,
			k.InjectAlertService(),
			k.InjectAnalyticsService(),
			k.InjectTelemetryService(),
			k.InjectBrokerService(),
			k.InjectLiveHub(),
			k.InjectMetricsService(),
			k.env.Simulator.TickInterval,
			k.env.Simulator.TickParallelism,
		)
	})

	return simulatorService
}

var (
	authzService     *authz.Service
	authzServiceOnce sync.Once
)

func (k *Kernel) InjectAuthzService() *authz.Service {
	authzServiceOnce.Do(func() {
		authzService = authz.NewService(
			k.InjectMetricsService(),
		)
	})

	return authzService
}

var (
	identityService     *identity.Service
	identityServiceOnce sync.Once
)

func (k *Kernel) InjectIdentityService() *identity.Service {
	identityServiceOnce.Do(func() {
		identityService = identity.NewService(
			k.env.API.JWTSecret,
		)
	})

	return identityService
}

var (
	dashboardHandler     *dashboard.Handler
	dashboardHandlerOnce sync.Once
)

func (k *Kernel) InjectDashboardHandler() *dashboard.Handler {
	dashboardHandlerOnce.Do(func() {
		dashboardHandler = dashboard.NewHandler(
			k.InjectAnalyticsService(),
			k.InjectIdentityService(),
			k.InjectAuthzService(),
			k.InjectLiveHub(),
			k.InjectMetricsService().Handler(),
		)
	})

	return dashboardHandler
}

var (
	httpServer     *http.Server
	httpServerOnce sync.Once
)

func (k *Kernel) InjectHTTPServer() *http.Server {
	httpServerOnce.Do(func() {
		httpServer = &http.Server{
			Addr:              k.env.API.Addr,
			Handler:           k.InjectDashboardHandler().Router(),
			ReadHeaderTimeout: constants.DefaultHTTPReadTimeout,
		}
	})

	return httpServer
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

// InjectMQService returns control plane client, telemetry goes through broker service.
func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(
			lo.Ternary(lo.IsEmpty(k.env.App.ControlMQURL), nats.DefaultURL, k.env.App.ControlMQURL),
		)
	})

	return mqService
}
