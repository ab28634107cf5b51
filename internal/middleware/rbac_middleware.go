package middleware

import (
	"context"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

const capabilitiesKey = "capabilities"

// CapabilityResolver returns the permission set of an employee inside a
// company. Implementations are expected to serve from a cached policy.
type CapabilityResolver interface {
	ResolveCapabilities(ctx context.Context, companyID, employeeID string) (domain.Capabilities, error)
}

// ResolveCapabilities resolves the caller's capability set once per request
// and stores it on both the gin and the request context.
func ResolveCapabilities(resolver CapabilityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetString(string(ContextCompanyID))
		employeeID := c.GetString(string(ContextEmployeeID))
		if companyID == "" || employeeID == "" {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}

		caps, err := resolver.ResolveCapabilities(c.Request.Context(), companyID, employeeID)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(capabilitiesKey, caps)
		c.Request = c.Request.WithContext(contextutil.WithCapabilities(c.Request.Context(), caps))
		c.Next()
	}
}

// RequireCapability is a pure lookup in the pre-resolved set.
func RequireCapability(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasCapability(c, resource, action) {
			abortWithError(c, apperror.ErrForbidden.WithDetails(gin.H{
				"required": domain.CapabilityKey(resource, action),
			}))
			return
		}
		c.Next()
	}
}

func HasCapability(c *gin.Context, resource, action string) bool {
	v, ok := c.Get(capabilitiesKey)
	if !ok {
		return false
	}
	caps, _ := v.(domain.Capabilities)
	return caps.Has(resource, action)
}

// SetCapabilities is used by tests and internal callers that resolve the
// set themselves.
func SetCapabilities(c *gin.Context, caps domain.Capabilities) {
	c.Set(capabilitiesKey, caps)
	if c.Request != nil {
		c.Request = c.Request.WithContext(contextutil.WithCapabilities(c.Request.Context(), caps))
	}
}
