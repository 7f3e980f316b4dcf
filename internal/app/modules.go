package app

import (
	"willowy/internal/department"
	"willowy/internal/designation"
	"willowy/internal/employee"
	"willowy/internal/history"
	"willowy/internal/media"
	"willowy/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	uploader media.Uploader,
) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	api := router.Group("/api")

	deptRepo := department.NewRepository(db)
	deptService := department.NewService(sqlDB, deptRepo, rdb)
	deptHandler := department.NewHandler(deptService)
	department.RegisterRoutes(api, deptHandler)

	desigRepo := designation.NewRepository(db)
	desigService := designation.NewService(sqlDB, desigRepo, rdb)
	desigHandler := designation.NewHandler(desigService)
	designation.RegisterRoutes(api, desigHandler)

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	emplRepo := employee.NewRepository(db)
	emplService := employee.NewServiceWithOutbox(sqlDB, emplRepo, uploader, outboxRepo)
	emplHandler := employee.NewHandler(emplService)
	employee.RegisterRoutes(api, emplHandler)

	historyRepo := history.NewRepository(db)
	historyHandler := history.NewHandler(historyRepo)
	history.RegisterRoutes(api, historyHandler)

	return nil
}
