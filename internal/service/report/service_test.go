package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartattend/attendance-backend-go/internal/domain/attendance"
	"github.com/smartattend/attendance-backend-go/internal/domain/report"
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

func ptr(s string) *string { return &s }

func newReporter(t *testing.T) report.Service {
	t.Helper()
	seed := &state.Snapshot{
		Users: []user.User{
			{ID: "1", Name: "Kavin", Department: "Engineering"},
			{ID: "2", Name: "Arun", Department: "Production"},
		},
		Records: []attendance.Record{
			{ID: "r1", UserID: "1", Date: "2026-01-05", CheckIn: ptr("09:15"), CheckOut: ptr("17:05"), Shift: shift.TypeGeneral, Status: attendance.StatusPresent},
			{ID: "r2", UserID: "2", Date: "2026-01-06", CheckIn: ptr("06:50"), Shift: shift.TypeA, Status: attendance.StatusLatePresent, LateMinutes: 20},
			{ID: "r3", UserID: "ghost", Date: "2026-01-06", Shift: shift.TypeGeneral, Status: attendance.StatusAbsent},
		},
	}
	store := state.Load(context.Background(), kv.NewMemory(), seed)
	return NewReportService(store)
}

func TestAttendanceJoinsProfileNewestFirst(t *testing.T) {
	svc := newReporter(t)

	rows, err := svc.Attendance(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "2026-01-06", rows[0].Date)
	assert.Equal(t, "", rows[0].Employee)

	assert.Equal(t, "Arun", rows[1].Employee)
	assert.Equal(t, "Production", rows[1].Department)
	assert.Equal(t, "06:50", rows[1].CheckIn)
	assert.Equal(t, "", rows[1].CheckOut)
	assert.Equal(t, 20, rows[1].LateMinutes)

	assert.Equal(t, "Kavin", rows[2].Employee)
}

func TestAttendanceSearchMatchesNameDepartmentAndDate(t *testing.T) {
	svc := newReporter(t)
	ctx := context.Background()

	byName, err := svc.Attendance(ctx, "kavin")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Kavin", byName[0].Employee)

	byDept, err := svc.Attendance(ctx, "production")
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, "Arun", byDept[0].Employee)

	byDate, err := svc.Attendance(ctx, "2026-01-06")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	none, err := svc.Attendance(ctx, "warehouse")
	require.NoError(t, err)
	assert.Empty(t, none)
}
