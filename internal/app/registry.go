package app

import (
	"database/sql"

	"payrollpro/internal/auth"
	"payrollpro/internal/employee"
	"payrollpro/internal/messaging/kafka"
	"payrollpro/internal/payroll"
	"payrollpro/internal/profile"
	"payrollpro/internal/rbac"
	"payrollpro/internal/rbac/infra"
	"payrollpro/internal/timelog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	timelogRepo := timelog.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, rdb)
	employeeService := employee.NewService(employeeRepo, rdb)
	payrollService := payroll.NewService(payrollRepo, rdb)
	profileService := profile.NewService(profileRepo)
	timelogService := timelog.NewServiceWithOutbox(db, timelogRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandler(payrollService)
	profileHandler := profile.NewHandler(profileService)
	timelogHandler := timelog.NewHandlerWithRedis(timelogService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, timelogHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService)
		profile.RegisterRoutes(api, profileHandler, rbacService)
		timelog.RegisterRoutes(api, timelogHandler, rbacService, rdb)
	}

	return nil
}
