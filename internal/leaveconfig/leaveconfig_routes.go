package leaveconfig

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	read := middleware.RequireCapability(domain.ResourceLeaveConfig, domain.ActionRead)
	manage := middleware.RequireCapability(domain.ResourceLeaveConfig, domain.ActionManage)

	configs := r.Group("/leave-configs")
	configs.Use(guard.Chain()...)
	{
		configs.GET("", read, handler.GetAll)
		configs.GET("/year/:year", read, handler.GetYear)
		configs.GET("/key/:key", read, handler.GetByKey)
		configs.POST("", manage, handler.Create)
		configs.PUT("/key/:key", manage, handler.Upsert)
	}
}
