package leavescheme

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	read := middleware.RequireCapability(domain.ResourceLeaveScheme, domain.ActionRead)
	manage := middleware.RequireCapability(domain.ResourceLeaveScheme, domain.ActionManage)

	schemes := r.Group("/leave-schemes")
	schemes.Use(guard.Chain()...)
	{
		schemes.GET("", read, handler.GetAllSchemes)
		schemes.POST("", manage, handler.CreateScheme)
		schemes.GET("/:id", read, handler.GetScheme)
		schemes.PUT("/:id", manage, handler.UpdateScheme)
		schemes.DELETE("/:id", manage, handler.DeactivateScheme)

		schemes.PUT("/:id/leave-types/:leaveTypeId", manage, handler.UpsertAllowance)
		schemes.DELETE("/:id/leave-types/:leaveTypeId", manage, handler.RemoveAllowance)

		schemes.POST("/:id/assignments", manage, handler.AssignScheme)
		schemes.PATCH("/assignments/:assignmentId", manage, handler.UpdateAssignment)
		schemes.DELETE("/assignments/:assignmentId", manage, handler.RemoveAssignment)
		schemes.GET("/employee/:employeeId", read, handler.GetEmployeeAssignments)
	}
}
