package leave_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-hris-leave/internal/leave"
	leaveerrors "go-hris-leave/internal/leave/errors"
	leaveMock "go-hris-leave/internal/leave/mock"
	"go-hris-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type apiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func newContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("missing leave type is a validation error", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		h := leave.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/leave-applications", `{"start_date":"2025-03-10","end_date":"2025-03-11"}`)

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
	})

	t.Run("created", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		h := leave.NewHandler(svc)
		leaveTypeID := uuid.New().String()
		body := `{"leave_type_id":"` + leaveTypeID + `","start_date":"2025-03-10","end_date":"2025-03-11"}`
		c, w := newContext(http.MethodPost, "/leave-applications", body)

		svc.EXPECT().
			Submit(gomock.Any(), companyID, employeeID, leave.SubmitLeaveRequest{
				LeaveTypeID: leaveTypeID,
				StartDate:   "2025-03-10",
				EndDate:     "2025-03-11",
			}).
			Return(leave.LeaveResponse{ID: "app-1", ReferenceNo: "LV-2025-000001", Status: leave.StatusPending, WorkingDays: 2}, nil)

		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp leave.LeaveResponse
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
		assert.Equal(t, "LV-2025-000001", resp.ReferenceNo)
		assert.Equal(t, 2.0, resp.WorkingDays)
	})
}

func TestLeaveHandler_Transitions(t *testing.T) {
	t.Run("approve with empty body", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		h := leave.NewHandler(svc)
		c, w := newContext(http.MethodPatch, "/leave-applications/app-1/approve", "")
		c.Params = gin.Params{{Key: "id", Value: "app-1"}}

		svc.EXPECT().
			Approve(gomock.Any(), companyID, employeeID, "app-1", leave.ApproveLeaveRequest{}).
			Return(leave.LeaveResponse{ID: "app-1", Status: leave.StatusApproved}, nil)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject after approval reports both statuses", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		h := leave.NewHandler(svc)
		c, w := newContext(http.MethodPatch, "/leave-applications/app-1/reject", `{"rejection_reason":"late"}`)
		c.Params = gin.Params{{Key: "id", Value: "app-1"}}

		svc.EXPECT().
			Reject(gomock.Any(), companyID, employeeID, "app-1", leave.RejectLeaveRequest{RejectionReason: "late"}).
			Return(leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
				"current_status":   leave.StatusApproved,
				"attempted_status": leave.StatusRejected,
			}))

		h.Reject(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeInvalidState, env.Error.Code)
		var details map[string]string
		require.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, leave.StatusApproved, details["current_status"])
		assert.Equal(t, leave.StatusRejected, details["attempted_status"])
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	svc := leaveMock.NewMockService(gomock.NewController(t))
	h := leave.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/leave-applications?status=pending&year=2025&page=2&page_size=5", "")

	svc.EXPECT().
		GetAll(gomock.Any(), companyID, leave.ListFilter{Status: leave.StatusPending, Year: 2025, Page: 2, PageSize: 5}).
		Return([]leave.LeaveResponse{{ID: "app-6"}}, int64(6), nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, int64(6), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestLeaveHandler_GetAllInvalidYear(t *testing.T) {
	svc := leaveMock.NewMockService(gomock.NewController(t))
	h := leave.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/leave-applications?year=soon", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveHandler_Calendar(t *testing.T) {
	svc := leaveMock.NewMockService(gomock.NewController(t))
	h := leave.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/leave-applications/calendar.ics?year=2025", "")

	svc.EXPECT().Calendar(gomock.Any(), companyID, "", 2025).Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil)

	h.Calendar(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leave_2025.ics")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}
