package rbac

import (
	"net/http"
	"strings"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce checks a single permission inside the caller's company.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.CompanyID = c.GetString("company_id")
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("rbac enforce failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

// MyCapabilities lists what the resolved caller may do.
func (h *Handler) MyCapabilities(c *gin.Context) {
	caps := contextutil.GetCapabilities(c.Request.Context())
	response.Success(c, http.StatusOK, CapabilitiesResponse{Capabilities: caps.List()}, nil)
}
