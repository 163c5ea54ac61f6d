package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/carterpaul1/cis453l-project/pkg/domain/service"
	"github.com/carterpaul1/cis453l-project/pkg/infrastructure/event"
	"github.com/carterpaul1/cis453l-project/pkg/infrastructure/memory"
	"github.com/carterpaul1/cis453l-project/transport"
)

const shutdownTimeout = 5 * time.Second

func serviceCommand() *cli.Command {
	return &cli.Command{
		Name:   "service",
		Usage:  "serve the order form REST API and gRPC health checks",
		Action: runService,
	}
}

func runService(c *cli.Context) error {
	cnf, err := parseEnv()
	if err != nil {
		return err
	}
	level, _ := log.ParseLevel(cnf.LogLevel)
	log.SetLevel(level)

	catalog, err := loadCatalog(cnf.CatalogPath)
	if err != nil {
		return err
	}

	sessions := service.NewOrderSessionService(
		memory.NewSessionRepository(),
		catalog,
		service.NewTimerScheduler(),
		event.NewLogDispatcher(log.StandardLogger()),
		cnf.ResetDelay,
	)

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:              cnf.ServeRESTAddress,
		Handler:           transport.Router(sessions, catalog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	g.Go(func() error {
		log.WithFields(log.Fields{"address": cnf.ServeRESTAddress}).Info("starting REST server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "REST server failed")
		}
		return nil
	})

	g.Go(func() error {
		listener, err := net.Listen("tcp", cnf.ServeGRPCAddress)
		if err != nil {
			return errors.Wrapf(err, "failed to listen on %s", cnf.ServeGRPCAddress)
		}
		log.WithFields(log.Fields{"address": cnf.ServeGRPCAddress}).Info("starting gRPC health server")
		if err := grpcServer.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			return errors.Wrap(err, "gRPC server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		healthServer.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("REST server shutdown failed")
		}

		return sessions.CloseAllSessions()
	})

	return g.Wait()
}
