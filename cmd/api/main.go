package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stridemap/stridemap/internal/adapters/http"
	natsadapter "github.com/stridemap/stridemap/internal/adapters/nats"
	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/ports"
	"github.com/stridemap/stridemap/internal/core/usecases"
	"github.com/stridemap/stridemap/internal/pkg/config"
	"github.com/stridemap/stridemap/internal/pkg/logging"
	"github.com/stridemap/stridemap/internal/pkg/metrics"
	"github.com/stridemap/stridemap/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("stridemap-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// NATS carries draw events in, label commands and change
	// notifications out. Without it the API still serves reads.
	nc, err := natsadapter.Connect(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable", "error", err)
	}

	var (
		publisher *natsadapter.Publisher
		renderer  *natsadapter.LabelRenderer
	)
	if nc != nil {
		publisher = natsadapter.NewPublisher(nc)
		renderer = natsadapter.NewLabelRenderer(nc)
	}

	// Use cases
	annotations := usecases.NewAnnotationService(
		usecases.NewRegistry(),
		usecases.NewUndoLog(),
		usecases.NewLabelService(labelRenderer(renderer)),
		eventPublisher(publisher),
	)
	locations := usecases.NewLocationService()

	// Draw event intake
	if nc != nil {
		sub := natsadapter.NewSubscriber(nc)
		err := sub.SubscribeDrawEvents(ctx, func(ctx context.Context, event *domain.DrawEvent) error {
			switch event.Type {
			case domain.DrawPathFinished:
				annotations.HandlePathFinished(ctx, event.Vertices)
				metrics.PathsCreated.Inc()
			case domain.DrawPathEdited:
				annotations.HandlePathEdited(ctx, event.PathID, event.Vertices)
			case domain.DrawPathRemoved:
				annotations.HandlePathRemoved(ctx, event.PathID)
				metrics.PathsDeleted.WithLabelValues("tool").Inc()
			default:
				slog.Warn("unknown draw event type", "type", string(event.Type))
			}
			return nil
		})
		if err != nil {
			log.Fatalf("subscribe draw events: %v", err)
		}
		defer sub.Close()
	}

	deps := &http.Dependencies{
		Annotations: annotations,
		Locations:   locations,
		NATS:        nc,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "Stridemap API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173, https://*.stridemap.dev",
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// labelRenderer and eventPublisher keep a nil adapter from becoming a
// non-nil interface value when NATS is unavailable.
func labelRenderer(r *natsadapter.LabelRenderer) ports.LabelRenderer {
	if r == nil {
		return nil
	}
	return r
}

func eventPublisher(p *natsadapter.Publisher) ports.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
