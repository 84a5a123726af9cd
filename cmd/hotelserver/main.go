// Package main provides the hotel server binary that serves room bookings over
// HTTP and, optionally, gRPC.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/hotel/internal/config"
	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
	"github.com/cory-johannsen/hotel/internal/hotelserver"
	hotelv1 "github.com/cory-johannsen/hotel/internal/hotelserver/hotelv1"
	"github.com/cory-johannsen/hotel/internal/httpapi"
	"github.com/cory-johannsen/hotel/internal/observability"
	"github.com/cory-johannsen/hotel/internal/server"
	"github.com/cory-johannsen/hotel/internal/storage/postgres"
)

const (
	healthInterval = 30 * time.Second
	healthTimeout  = 5 * time.Second
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before the configuration")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting hotel server",
		zap.String("http_addr", cfg.Server.Addr()),
		zap.Bool("grpc", cfg.GRPC.Enabled),
		zap.Bool("journal", cfg.Journal.Enabled),
	)

	layout, err := buildLayout(cfg.Hotel)
	if err != nil {
		logger.Fatal("building layout", zap.Error(err))
	}
	inv, err := inventory.New(layout)
	if err != nil {
		logger.Fatal("creating inventory", zap.Error(err))
	}
	logger.Info("inventory loaded",
		zap.Int("floors", len(inv.Floors())),
		zap.Int("rooms", inv.Len()),
	)

	lifecycle := server.NewLifecycle(logger, cfg.Server.ShutdownTimeout)

	var journal booking.Journal
	if cfg.Journal.Enabled {
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		journal = postgres.NewJournalRepository(pool.DB())

		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func(ctx context.Context) error {
				return pool.Monitor(ctx, healthInterval, healthTimeout, logger)
			},
			StopFn: func(context.Context) error {
				pool.Close()
				return nil
			},
		})
	}

	svc := booking.NewService(booking.NewGateway(inv), journal, logger)

	httpServer := &http.Server{
		Handler:           httpapi.NewRouter(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	lifecycle.Add("http", &server.FuncService{
		StartFn: func(context.Context) error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr(), err)
			}
			logger.Info("HTTP server listening", zap.String("addr", lis.Addr().String()))
			if err := httpServer.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		StopFn: httpServer.Shutdown,
	})

	if cfg.GRPC.Enabled {
		grpcServer := grpc.NewServer(grpc.UnaryInterceptor(observability.UnaryServerInterceptor(logger)))
		hotelv1.RegisterRoomServiceServer(grpcServer, hotelserver.NewRoomServiceServer(svc, logger))

		lifecycle.Add("grpc", &server.FuncService{
			StartFn: func(context.Context) error {
				lis, err := net.Listen("tcp", cfg.GRPC.Addr())
				if err != nil {
					return fmt.Errorf("listening on %s: %w", cfg.GRPC.Addr(), err)
				}
				logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
				return grpcServer.Serve(lis)
			},
			StopFn: func(ctx context.Context) error {
				return stopGRPC(ctx, grpcServer)
			},
		})
	}

	logger.Info("hotel server initialized", zap.Duration("startup", time.Since(start)))

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// buildLayout returns the layout file's floors when one is configured and the
// generated standard layout otherwise.
func buildLayout(cfg config.HotelConfig) (inventory.Layout, error) {
	if cfg.LayoutFile != "" {
		return inventory.LoadLayoutFromFile(cfg.LayoutFile)
	}
	return inventory.StandardLayout(cfg.Floors, cfg.RoomsPerFloor, cfg.TopFloorRooms), nil
}

// stopGRPC drains in-flight calls, forcing a stop when ctx expires first.
func stopGRPC(ctx context.Context, s *grpc.Server) error {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.Stop()
		return ctx.Err()
	}
}
