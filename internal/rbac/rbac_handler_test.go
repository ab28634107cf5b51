package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	Service
	got EnforceRequest
}

func (f *fakeService) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	f.got = req
	return req.Resource == domain.ResourceLeaveType && req.Action == domain.ActionRead, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{}
	handler := NewHandler(svc)

	router := gin.New()
	router.POST("/rbac/enforce", func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Next()
	}, handler.Enforce)

	body, _ := json.Marshal(EnforceRequest{
		EmployeeID: " emp-1 ",
		CompanyID:  "someone-else",
		Resource:   domain.ResourceLeaveType,
		Action:     domain.ActionRead,
	})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data EnforceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Data.Allowed)
	assert.Equal(t, "company-1", svc.got.CompanyID)
	assert.Equal(t, "emp-1", svc.got.EmployeeID)
}

func TestHandler_MyCapabilities(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	caps := domain.NewCapabilities("leave_type:read", "leave_application:approve")
	c.Request = httptest.NewRequest(http.MethodGet, "/rbac/me/capabilities", nil)
	c.Request = c.Request.WithContext(contextutil.WithCapabilities(c.Request.Context(), caps))

	handler.MyCapabilities(c)

	var env struct {
		Data CapabilitiesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, []string{"leave_application:approve", "leave_type:read"}, env.Data.Capabilities)
}
