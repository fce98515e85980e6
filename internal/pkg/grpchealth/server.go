package grpchealth

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"marketplace/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
	KeepaliveMinTime = 30 * time.Second

	// ServiceName - имя, под которым публикуется статус HTTP API.
	ServiceName = "marketplace.v1.HTTP"
)

// Server отдает grpc.health.v1 для оркестратора. Статус повторяет readiness
// HTTP сервера: SERVING до сигнала остановки, дальше NOT_SERVING.
type Server struct {
	log    logger.Logger
	srv    *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	srv := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             KeepaliveMinTime,
			PermitWithoutStream: false,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		srv:    srv,
		health: healthServer,
	}
}

// Serve блокируется до Shutdown.
func (s *Server) Serve(lis net.Listener) error {
	s.SetServing(true)

	s.log.With(
		logger.NewField("addr", lis.Addr().String()),
	).Info("grpc health server starting")

	if err := s.srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	// пустое имя - общий статус сервера
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Shutdown переводит все сервисы в NOT_SERVING и ждет завершения вызовов.
// По истечении ctx соединения закрываются принудительно.
func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("grpc health server stopped")
		return nil
	case <-ctx.Done():
		s.srv.Stop()
		return fmt.Errorf("grpc health shutdown: %w", ctx.Err())
	}
}
