package payroll

import (
	"payrollpro/internal/auth"
	"payrollpro/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(auth.RoleAdmin))
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payrolls", "read"), h.List)
		payrolls.GET("/summary", middleware.RBACAuthorize(rbacService, "payrolls", "read"), h.Summary)
	}
}
