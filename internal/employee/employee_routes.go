package employee

import (
	"payrollpro/internal/auth"
	"payrollpro/internal/middleware"
	"payrollpro/internal/timelog"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin roster. The per-employee log viewer reuses
// the timelog handler with the target id taken from the path.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, timelogHandler *timelog.Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(auth.RoleAdmin))
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetRoster)
		employees.GET("/:id/timelogs", middleware.RBACAuthorize(rbacService, "timelogs", "read"), timelogHandler.ListForUser)
	}
}
