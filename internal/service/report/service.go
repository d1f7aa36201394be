package report

import (
	"context"
	"strings"

	"github.com/smartattend/attendance-backend-go/internal/domain/report"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type ReportServiceImpl struct {
	store *state.Store
}

func NewReportService(store *state.Store) report.Service {
	return &ReportServiceImpl{store: store}
}

// Attendance implements report.Service. Rows come back newest first,
// joined with the employee's name and department. Records whose user no
// longer exists still appear, with blank profile columns.
func (s *ReportServiceImpl) Attendance(ctx context.Context, search string) ([]report.Row, error) {
	snap := s.store.Snapshot()
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]report.Row, 0, len(snap.Records))
	for i := len(snap.Records) - 1; i >= 0; i-- {
		rec := snap.Records[i]

		var name, department string
		if u, ok := user.FindByID(snap.Users, rec.UserID); ok {
			name = u.Name
			department = u.Department
		}

		row := report.Row{
			Date:        rec.Date,
			Employee:    name,
			Department:  department,
			CheckIn:     deref(rec.CheckIn),
			CheckOut:    deref(rec.CheckOut),
			Shift:       string(rec.Shift),
			Status:      string(rec.Status),
			LateMinutes: rec.LateMinutes,
		}
		if search != "" && !matches(row, search) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func matches(row report.Row, search string) bool {
	return strings.Contains(strings.ToLower(row.Employee), search) ||
		strings.Contains(strings.ToLower(row.Department), search) ||
		strings.Contains(row.Date, search)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
