package leavebalance

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavebalance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("leave balance request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		h.logger.Warn("leave balance request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// queryYear defaults to the current year.
func queryYear(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().UTC().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, leavebalanceerrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) GetEmployeeBalances(c *gin.Context) {
	h.listBalances(c, c.Param("employeeId"))
}

func (h *Handler) GetMyBalances(c *gin.Context) {
	h.listBalances(c, c.GetString("employee_id"))
}

func (h *Handler) listBalances(c *gin.Context, employeeID string) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.GetEmployeeBalances(c.Request.Context(), c.GetString("company_id"), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.GetBalance(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("employeeId"),
		c.Param("leaveTypeId"),
		year,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Populate(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	companyID := c.GetString("company_id")
	h.logger.Debug("http populate leave balances", zap.String("company_id", companyID), zap.Int("year", year))

	resp, err := h.service.PopulateForYear(c.Request.Context(), companyID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdjustAllocation(c *gin.Context) {
	var req AdjustAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http leave balance validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	resp, err := h.service.AdjustAllocation(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := h.service.ExportXLSX(c.Request.Context(), c.GetString("company_id"), year, &buf); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ExportFilename(year)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
