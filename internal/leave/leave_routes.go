package leave

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	guard middleware.Guard,
	rdb *redis.Client,
) {
	leaves := r.Group("/leave-applications")
	leaves.Use(guard.Chain()...)
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Submit)
		leaves.GET("/me", handler.GetMine)
		leaves.GET("", middleware.RequireCapability(domain.ResourceLeaveApplication, domain.ActionRead), handler.GetAll)
		leaves.GET("/calendar.ics", middleware.RequireCapability(domain.ResourceLeaveApplication, domain.ActionRead), handler.Calendar)
		leaves.GET("/:id", middleware.RequireCapability(domain.ResourceLeaveApplication, domain.ActionRead), handler.GetByID)
		leaves.PATCH("/:id/approve", middleware.RequireCapability(domain.ResourceLeaveApplication, domain.ActionApprove), handler.Approve)
		leaves.PATCH("/:id/reject", middleware.RequireCapability(domain.ResourceLeaveApplication, domain.ActionApprove), handler.Reject)
		leaves.PATCH("/:id/cancel", handler.Cancel)
	}
}
