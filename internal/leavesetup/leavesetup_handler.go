package leavesetup

import (
	"net/http"
	"strconv"
	"time"

	leavesetuperrors "go-hris-leave/internal/leavesetup/errors"
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
	l := zap.L().Named("leavesetup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavesetup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) SetupDefaults(c *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, leavesetuperrors.ErrInvalidYear)
			return
		}
		year = v
	}

	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}

	resp, err := h.service.Run(c.Request.Context(), c.GetString("company_id"), actorID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave setup request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
