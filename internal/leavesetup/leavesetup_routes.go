package leavesetup

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	setup := r.Group("/leave-management")
	setup.Use(guard.Chain()...)
	{
		setup.POST("/setup-default-leave-types", middleware.RequireCapability(domain.ResourceLeaveSetup, domain.ActionManage), handler.SetupDefaults)
	}
}
