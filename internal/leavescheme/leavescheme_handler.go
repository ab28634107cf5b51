package leavescheme

import (
	"net/http"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavescheme.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavescheme.handler")
	}
	return &Handler{service: service, logger: l}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave scheme request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("http leave scheme validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return false
	}
	return true
}

func (h *Handler) CreateScheme(c *gin.Context) {
	var req CreateSchemeRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.service.CreateScheme(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllSchemes(c *gin.Context) {
	resp, err := h.service.GetAllSchemes(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetScheme(c *gin.Context) {
	resp, err := h.service.GetScheme(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateScheme(c *gin.Context) {
	var req UpdateSchemeRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateScheme(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeactivateScheme(c *gin.Context) {
	resp, err := h.service.DeactivateScheme(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertAllowance(c *gin.Context) {
	var req UpsertAllowanceRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.service.UpsertAllowance(c.Request.Context(), c.GetString("company_id"), c.Param("id"), c.Param("leaveTypeId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveAllowance(c *gin.Context) {
	if err := h.service.RemoveAllowance(c.Request.Context(), c.GetString("company_id"), c.Param("id"), c.Param("leaveTypeId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AssignScheme(c *gin.Context) {
	var req AssignSchemeRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.service.AssignScheme(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	var req UpdateAssignmentRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateAssignment(c.Request.Context(), c.GetString("company_id"), c.Param("assignmentId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveAssignment(c *gin.Context) {
	if err := h.service.RemoveAssignment(c.Request.Context(), c.GetString("company_id"), c.Param("assignmentId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetEmployeeAssignments(c *gin.Context) {
	resp, err := h.service.GetEmployeeAssignments(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
