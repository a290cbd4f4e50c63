package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	config "recruit-timeline.com/recruit-timeline/internal/configs"
	httpapi "recruit-timeline.com/recruit-timeline/internal/http"
	"recruit-timeline.com/recruit-timeline/internal/queue"
	repository "recruit-timeline.com/recruit-timeline/internal/repositories"
	"recruit-timeline.com/recruit-timeline/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the recruiting timeline engine behind its HTTP host adapter",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.New(cfg.DatabaseDSN)

		var locks queue.LockManager
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			locks = queue.NewRedisLockManager(
				redisClient,
				cfg.LockKeyPrefix,
				time.Duration(cfg.LockTTLSeconds)*time.Second,
			)
		} else {
			locks = queue.NewMemoryLockManager()
		}

		timelineRepo := repository.NewTimelineRepository(db)
		profileRepo := repository.NewProfileRepository(db)

		timelineService := services.NewTimelineService(
			timelineRepo,
			profileRepo,
			catalog.DefaultCatalog(),
			services.SystemClock{},
		)

		e := echo.New()
		handler := httpapi.NewHandler(timelineService, locks)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
