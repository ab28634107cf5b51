package leavebalance

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	balances := r.Group("/leave-balances")
	balances.Use(guard.Chain()...)
	{
		balances.GET("/me", handler.GetMyBalances)
		balances.GET("/employee/:employeeId", middleware.RequireCapability(domain.ResourceLeaveBalance, domain.ActionRead), handler.GetEmployeeBalances)
		balances.GET("/employee/:employeeId/leave-type/:leaveTypeId", middleware.RequireCapability(domain.ResourceLeaveBalance, domain.ActionRead), handler.GetBalance)
		balances.GET("/export", middleware.RequireCapability(domain.ResourceLeaveBalance, domain.ActionRead), handler.Export)
		balances.POST("/populate", middleware.RequireCapability(domain.ResourceLeaveBalance, domain.ActionPopulate), handler.Populate)
		balances.PATCH("/:id/allocation", middleware.RequireCapability(domain.ResourceLeaveBalance, domain.ActionAdjust), handler.AdjustAllocation)
	}
}
