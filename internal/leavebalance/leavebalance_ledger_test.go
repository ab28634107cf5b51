package leavebalance

import (
	"bytes"
	"testing"
	"time"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavescheme"
	"go-hris-leave/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func days(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestRemainingDays(t *testing.T) {
	b := LeaveBalance{AllocatedDays: days(6), UsedDays: days(2.5)}
	assert.Equal(t, "3.5", b.RemainingDays().String())

	b.UsedDays = days(6)
	assert.True(t, b.RemainingDays().IsZero())
}

func TestCheckDelta(t *testing.T) {
	tests := []struct {
		name      string
		allocated float64
		used      float64
		delta     float64
		wantUsed  string
		wantErr   error
	}{
		{name: "consume within balance", allocated: 6, used: 0, delta: 2, wantUsed: "2"},
		{name: "consume exactly the remainder", allocated: 6, used: 4, delta: 2, wantUsed: "6"},
		{name: "consume half day", allocated: 6, used: 1, delta: 0.5, wantUsed: "1.5"},
		{name: "consume beyond allocation", allocated: 6, used: 5, delta: 2, wantUsed: "5", wantErr: leavebalanceerrors.ErrInsufficientBalance},
		{name: "restore exactly", allocated: 6, used: 2, delta: -2, wantUsed: "0"},
		{name: "restore more than used", allocated: 6, used: 1, delta: -2, wantUsed: "1", wantErr: leavebalanceerrors.ErrBalanceUnderflow},
		{name: "zero allocation refuses any use", allocated: 0, used: 0, delta: 0.5, wantUsed: "0", wantErr: leavebalanceerrors.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := LeaveBalance{AllocatedDays: days(tt.allocated), UsedDays: days(tt.used)}
			got, err := CheckDelta(b, days(tt.delta))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantUsed, got.String())
		})
	}
}

func TestReferenceDate(t *testing.T) {
	today := time.Date(2025, time.May, 20, 15, 4, 0, 0, time.UTC)

	assert.Equal(t, "2025-05-20", ReferenceDate(2025, today).Format("2006-01-02"))
	assert.Equal(t, "2026-01-01", ReferenceDate(2026, today).Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", ReferenceDate(2024, today).Format("2006-01-02"))
}

func TestPlanAllocations(t *testing.T) {
	casual := leavetype.LeaveType{ID: uuid.New(), Name: "Casual Leave", MaxDays: days(6)}
	sick := leavetype.LeaveType{ID: uuid.New(), Name: "Sick Leave", MaxDays: days(10)}
	types := []leavetype.LeaveType{casual, sick}

	t.Run("leave type max days without config", func(t *testing.T) {
		plan := planAllocations(types, nil, nil)

		require.Len(t, plan, 2)
		assert.Equal(t, SourceLeaveType, plan[0].Source)
		assert.Equal(t, "6", plan[0].Days.String())
		assert.Equal(t, "10", plan[1].Days.String())
	})

	t.Run("year config overrides max days per type", func(t *testing.T) {
		plan := planAllocations(types, nil, map[string]decimal.Decimal{casual.ID.String(): days(8)})

		require.Len(t, plan, 2)
		assert.Equal(t, SourceGlobal, plan[0].Source)
		assert.Equal(t, "8", plan[0].Days.String())
		assert.Equal(t, SourceLeaveType, plan[1].Source)
		assert.Equal(t, "10", plan[1].Days.String())
	})

	t.Run("active scheme wins and limits the leave types", func(t *testing.T) {
		scheme := &leavescheme.ActiveScheme{
			SchemeID: uuid.New(),
			Name:     "Senior Staff",
			Allowances: map[string]leavescheme.Allowance{
				sick.ID.String(): {Days: days(15)},
			},
		}
		plan := planAllocations(types, scheme, map[string]decimal.Decimal{sick.ID.String(): days(8)})

		require.Len(t, plan, 1)
		assert.Equal(t, sick.ID, plan[0].LeaveTypeID)
		assert.Equal(t, SourceScheme, plan[0].Source)
		assert.Equal(t, "15", plan[0].Days.String())
		require.NotNil(t, plan[0].SchemeID)
		assert.Equal(t, scheme.SchemeID, *plan[0].SchemeID)
	})
}

func TestBuildWorkbook(t *testing.T) {
	f, err := buildWorkbook([]ExportRow{{
		EmployeeNumber: "EMP-001",
		EmployeeName:   "Dewi Lestari",
		LeaveTypeName:  "Casual Leave",
		Year:           2025,
		AllocatedDays:  days(6),
		UsedDays:       days(1.5),
		Source:         SourceGlobal,
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	f.Close()

	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer out.Close()

	header, _ := out.GetCellValue(exportSheet, "A1")
	assert.Equal(t, "Employee No", header)
	name, _ := out.GetCellValue(exportSheet, "B2")
	assert.Equal(t, "Dewi Lestari", name)
	remaining, _ := out.GetCellValue(exportSheet, "G2")
	assert.Equal(t, "4.5", remaining)
}
