package rbac

import (
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	group := r.Group("/rbac")
	group.Use(guard.Chain()...)
	{
		group.GET("/me/capabilities", handler.MyCapabilities)
		group.POST("/enforce", handler.Enforce)
	}
}
