package employee

import (
	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	employees := r.Group("/employees")
	employees.Use(guard.Chain()...)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireCapability(domain.ResourceEmployee, domain.ActionRead),
			handler.GetAll,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireCapability(domain.ResourceEmployee, domain.ActionRead),
			handler.GetByID,
		)
	}
}
