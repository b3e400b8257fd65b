package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Fivegen-LLC/sdwan-lib/pkg/logger"
	"github.com/rs/zerolog/log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/coffee-fleet/infrastructure"
	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/environment"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.App.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Output(logWriter)
	if err = logger.SetLogLevel(env.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("service", constants.ServiceName).
		Str("service version", serviceVersion).
		Str("log path", env.App.LogfilePath).
		Str("log level", env.App.LogLevel).
		Int("machines", len(env.Simulator.Fleet)).
		Dur("tick interval", env.Simulator.TickInterval).
		Str("broker", env.Broker.URL).
		Str("api addr", env.API.Addr).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(cancelCtx, kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(ctx context.Context, kernel *infrastructure.Kernel) (err error) {
	// telemetry broker, first tick retries on failure
	log.Info().Msg("initServices: connecting to telemetry broker...")
	if err = kernel.InjectBrokerService().Connect(); err != nil {
		log.Error().Err(err).Msg("initServices: telemetry broker unavailable, will retry on tick")
	} else {
		log.Info().Msg("initServices: connected to telemetry broker")
	}

	// control plane
	log.Info().Msg("initServices: connecting to MQ broker...")
	mqService := kernel.InjectMQService()
	mqRoutes := getMQRoutes(kernel)
	mqService.RegisterHandlers(mqRoutes)
	if err = mqService.Connect(); err != nil {
		return fmt.Errorf("initServices: connection to message broker failed: %w", err)
	}
	log.Info().Msg("initServices: connected to MQ broker")

	for subject := range mqRoutes {
		if err = mqService.ActivateHandler(subject); err != nil {
			return fmt.Errorf("initServices: %w", err)
		}
	}

	log.Info().Msg("initServices: starting dashboard api...")
	server := kernel.InjectHTTPServer()
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("initServices: dashboard api stopped")
		}
	}()
	log.Info().Str("addr", server.Addr).Msg("initServices: dashboard api started")

	log.Info().Msg("initServices: starting simulator...")
	kernel.InjectSimulatorService().Start(ctx)
	log.Info().Msg("initServices: simulator started")

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	// scheduler stops on ctx cancel, in-flight tick must finish before transport and storage close
	kernel.InjectSimulatorService().Wait()
	log.Info().Msg("shutdownServices: simulator stopped")

	kernel.InjectLiveHub().Close()
	if err := kernel.InjectHTTPServer().Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdownServices: dashboard api shutdown error")
	}

	if err := kernel.InjectBrokerService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close telemetry broker error")
	}

	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.DB.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15, // megabytes
		MaxAge:     30,
		MaxBackups: 10,
		Compress:   true,
	}, nil
}
