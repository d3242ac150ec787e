package app

import (
	"net/http"
	"os"

	"payrollpro/internal/middleware"
	"payrollpro/internal/shared/connection"
	"payrollpro/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	// Landing route, no auth. Also serves as the liveness probe.
	router.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"service": "payrollpro",
			"status":  "ok",
		}, nil)
	})

	return registerModules(router, sqlDB, gormDB, redisClient)
}
