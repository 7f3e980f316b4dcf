package app

import (
	"os"

	"willowy/internal/media"
	"willowy/internal/middleware"
	"willowy/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module's routes.
// The store, cache, and media clients are process-lifetime singletons built
// here once and injected downward.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrateSchema(db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	uploader, err := media.NewCloudinaryUploader(
		os.Getenv("CLOUDINARY_URL"),
		os.Getenv("CLOUDINARY_FOLDER"),
	)
	if err != nil {
		return err
	}
	zap.L().Info("media upload client ready")

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 40))

	return registerModules(router, db, redisClient, uploader)
}
