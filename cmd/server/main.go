package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"wallpaper_backend/internal/app/di"
	"wallpaper_backend/internal/app/router"
	authadapters "wallpaper_backend/internal/feature/auth/adapters"
	authhandler "wallpaper_backend/internal/feature/auth/transport/handler"
	authusecase "wallpaper_backend/internal/feature/auth/usecase"
	wallpaperhandler "wallpaper_backend/internal/feature/wallpapers/transport/handler"
	wallpaperusecase "wallpaper_backend/internal/feature/wallpapers/usecase"
	infradb "wallpaper_backend/internal/platform/db"
	infraredis "wallpaper_backend/internal/platform/redis"
	"wallpaper_backend/internal/platform/token"
)

func main() {
	production := os.Getenv("APP_ENV") == "production"
	setupLogger(production)
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := loadTokenSecret(production)
	codec := token.NewCodec(secret, token.DefaultTTL)

	// db
	dbCfg := infradb.LoadConfigFromEnv()
	if dbCfg.URL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}
	db, err := infradb.ConnectWithRetry(dbCfg.URL, 60*time.Second, infradb.OpenPostgres)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if dbCfg.RunMigrations {
		if err := infradb.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without cache")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Optional moderation and tag suggestion clients
	curation := di.NewCuration(context.Background())
	defer curation.Close()

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	wallpaperRepo := di.NewWallpaperRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	wallpaperUC := wallpaperusecase.NewWallpaperUsecase(wallpaperRepo, curation.Moderator)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	wallpaperH := wallpaperhandler.NewWallpaperHandler(wallpaperUC)

	r := router.NewRouter(authH, wallpaperH, curation.Handler, codec)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the process-wide slog handler. Production gets JSON
// for the log collector, everything else a readable text handler.
func setupLogger(production bool) {
	var h slog.Handler
	if production {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(h))
}

// loadTokenSecret reads JWT_SECRET. A production deployment must carry a real
// secret; development falls back to a well-known one with a warning.
func loadTokenSecret(production bool) string {
	secret := os.Getenv(token.EnvKeySecret)
	switch {
	case secret == "" && production:
		slog.Error("JWT_SECRET must be set in production")
		os.Exit(1)
	case secret == token.DevelopmentSecret && production:
		slog.Error("JWT_SECRET must not use the development default in production")
		os.Exit(1)
	case secret == "":
		slog.Warn("JWT_SECRET is not set, using the development default")
		secret = token.DevelopmentSecret
	}
	return secret
}
