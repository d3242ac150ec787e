package profile

import (
	"payrollpro/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		profile.GET("", middleware.RBACAuthorize(rbacService, "profile", "read"), h.Get)
		profile.PUT("", middleware.RBACAuthorize(rbacService, "profile", "update"), h.Save)
	}
}
