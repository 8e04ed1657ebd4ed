package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"travel_journal/internal/app/di"
	"travel_journal/internal/app/router"
	authadapters "travel_journal/internal/feature/auth/adapters"
	authhandler "travel_journal/internal/feature/auth/transport/handler"
	authusecase "travel_journal/internal/feature/auth/usecase"
	goalsadapters "travel_journal/internal/feature/goals/adapters"
	goalshandler "travel_journal/internal/feature/goals/transport/handler"
	goalsusecase "travel_journal/internal/feature/goals/usecase"
	socialadapters "travel_journal/internal/feature/social/adapters"
	socialhandler "travel_journal/internal/feature/social/transport/handler"
	socialusecase "travel_journal/internal/feature/social/usecase"
	travelhandler "travel_journal/internal/feature/travelhistory/transport/handler"
	travelusecase "travel_journal/internal/feature/travelhistory/usecase"
	"travel_journal/internal/platform/db"
	jwtmw "travel_journal/internal/platform/jwt"
	"travel_journal/internal/platform/mediastore"
	infraredis "travel_journal/internal/platform/redis"
)

// devJWTSecret is used when JWT_SECRET is unset so that local runs work.
const devJWTSecret = "dev-only-insecure-secret"

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := loadServerConfig()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg serverConfig) error {
	// db
	dbCfg := db.LoadConfigFromEnv()
	gdb, err := db.OpenDB(dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, sqlDB, "up"); err != nil {
			return err
		}
	}

	supervisor := db.NewSupervisor(sqlDB, dbCfg.AcquireTimeout, dbCfg.ReconnectEvery)
	go supervisor.Run(ctx)

	// Redis
	redisCfg := infraredis.LoadConfigFromEnv()
	var rdb *redisv9.Client
	if redisCfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Media
	mediaCfg := mediastore.LoadConfigFromEnv()
	media, err := di.NewMediaStore(ctx, mediaCfg)
	if err != nil {
		return err
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	jwtCfg := jwtmw.LoadConfigFromEnv()
	if jwtCfg.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Using an insecure development secret; set a strong secret in production.")
		jwtCfg.Secret = devJWTSecret
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gdb)
	historyRepo := di.NewHistoryRepository(rdb, gdb, redisCfg.CacheTTL)
	goalRepo := goalsadapters.NewGoalRepository(gdb)
	socialRepo := socialadapters.NewSocialRepository(gdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration))
	travelUC := travelusecase.NewTravelHistoryUsecase(historyRepo, media, mediaCfg.PublicPrefix)
	goalsUC := goalsusecase.NewGoalUsecase(goalRepo)
	socialUC := socialusecase.NewSocialUsecase(socialRepo, socialRepo)

	// Handler / ルータ生成
	engine := router.NewRouter(router.Handlers{
		Auth:   authhandler.NewAuthHandler(authUC),
		Travel: travelhandler.NewTravelHistoryHandler(travelUC),
		Media:  travelhandler.NewMediaHandler(media),
		Goals:  goalshandler.NewGoalHandler(goalsUC),
		Social: socialhandler.NewSocialHandler(socialUC),
	}, supervisor, router.Options{
		CORSOrigins: cfg.CORSOrigins,
		JWTSecret:   jwtCfg.Secret,
		MediaPrefix: mediaCfg.PublicPrefix,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "media_backend", mediaCfg.Backend, "cache", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
