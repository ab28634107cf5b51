package infra_test

import (
	"testing"

	"go-hris-leave/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcer_CompanyDomains(t *testing.T) {
	text, err := infra.LoadModel("model.conf")
	require.NoError(t, err)

	e, err := infra.NewEnforcer(text)
	require.NoError(t, err)

	_, err = e.AddPolicy("hr_manager", "company-a", "leave_application", "approve")
	require.NoError(t, err)
	_, err = e.AddGroupingPolicy("emp-1", "hr_manager", "company-a")
	require.NoError(t, err)

	ok, err := e.Enforce("emp-1", "company-a", "leave_application", "approve")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Enforce("emp-1", "company-b", "leave_application", "approve")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Enforce("emp-1", "company-a", "leave_balance", "adjust")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := infra.LoadModel("does-not-exist.conf")
	assert.ErrorContains(t, err, "read rbac model")
}
