package leavetype

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	types := r.Group("/leave-types")
	types.Use(guard.Chain()...)
	{
		types.GET("", middleware.RequireCapability(domain.ResourceLeaveType, domain.ActionRead), handler.GetAll)
		types.GET("/:id", middleware.RequireCapability(domain.ResourceLeaveType, domain.ActionRead), handler.GetByID)
		types.POST("", middleware.RequireCapability(domain.ResourceLeaveType, domain.ActionManage), handler.Create)
		types.PUT("/:id", middleware.RequireCapability(domain.ResourceLeaveType, domain.ActionManage), handler.Update)
		types.DELETE("/:id", middleware.RequireCapability(domain.ResourceLeaveType, domain.ActionManage), handler.Deactivate)
	}
}
