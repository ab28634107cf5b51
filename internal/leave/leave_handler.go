package leave

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	leaveerrors "go-hris-leave/internal/leave/errors"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const calendarContentType = "text/calendar; charset=utf-8"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
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
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("leave request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		h.logger.Warn("leave request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http leave validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	appErr := apperror.MapValidationError(err)
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)
	h.logger.Debug("http submit leave", zap.String("company_id", companyID), zap.String("actor_id", actorID))

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveLeaveRequest
	if !h.bindOptional(c, &req) {
		return
	}
	resp, err := h.service.Approve(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectLeaveRequest
	if !h.bindOptional(c, &req) {
		return
	}
	resp, err := h.service.Reject(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelLeaveRequest
	if !h.bindOptional(c, &req) {
		return
	}
	resp, err := h.service.Cancel(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// bindOptional accepts an empty body for the transition endpoints.
func (h *Handler) bindOptional(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		h.writeBindError(c, err)
		return false
	}
	return true
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.list(c, c.Query("employee_id"))
}

func (h *Handler) GetMine(c *gin.Context) {
	h.list(c, getActorID(c))
}

func (h *Handler) list(c *gin.Context, employeeID string) {
	page, pageSize := response.PageParams(c)
	filter := ListFilter{
		Status:     c.Query("status"),
		EmployeeID: employeeID,
		Page:       page,
		PageSize:   pageSize,
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidYear)
			return
		}
		filter.Year = year
	}

	resp, total, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Calendar(c *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidYear)
			return
		}
		year = v
	}

	feed, err := h.service.Calendar(c.Request.Context(), c.GetString("company_id"), c.Query("employee_id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="leave_%d.ics"`, year))
	c.Data(http.StatusOK, calendarContentType, []byte(feed))
}
