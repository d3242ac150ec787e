package timelog

import (
	"payrollpro/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	timelogs := r.Group("/timelogs")
	timelogs.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		timelogs.GET("", middleware.RBACAuthorize(rbacService, "timelogs", "read"), h.List)
		timelogs.GET("/today", middleware.RBACAuthorize(rbacService, "timelogs", "read"), h.Today)
		timelogs.POST("/clock-in",
			middleware.RBACAuthorize(rbacService, "timelogs", "create"),
			middleware.Idempotency(rdb),
			h.ClockIn,
		)
		timelogs.POST("/clock-out",
			middleware.RBACAuthorize(rbacService, "timelogs", "update"),
			middleware.Idempotency(rdb),
			h.ClockOut,
		)
	}
}
