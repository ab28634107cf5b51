package middleware

import "github.com/gin-gonic/gin"

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
)

// Guard bundles the middleware every protected route group runs before
// its capability checks.
type Guard struct {
	Auth         gin.HandlerFunc
	Capabilities gin.HandlerFunc
	Extra        []gin.HandlerFunc
}

func NewGuard(secret string, resolver CapabilityResolver, extra ...gin.HandlerFunc) Guard {
	return Guard{
		Auth:         AuthMiddleware(secret),
		Capabilities: ResolveCapabilities(resolver),
		Extra:        extra,
	}
}

func (g Guard) Chain() []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, 2+len(g.Extra))
	if g.Auth != nil {
		chain = append(chain, g.Auth)
	}
	if g.Capabilities != nil {
		chain = append(chain, g.Capabilities)
	}
	return append(chain, g.Extra...)
}
