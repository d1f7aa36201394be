package state

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartattend/attendance-backend-go/internal/domain/attendance"
	"github.com/smartattend/attendance-backend-go/internal/domain/holiday"
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
)

const seedPassword = "1234"

// Seed builds the fallback dataset used when the mirror holds nothing
// usable: a small roster across the shift types, the fixed holiday
// calendar for the current year, and a few recent attendance records so
// the admin views are not empty on first boot.
func Seed(now time.Time) *Snapshot {
	hash := mustHash(seedPassword)
	year := now.Year()

	return &Snapshot{
		Users: []user.User{
			{ID: "1", Username: "kavin", PasswordHash: hash, Role: user.RoleUser, Name: "Kavin", Department: "Engineering", AssignedShift: shift.TypeGeneral, LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
			{ID: "2", Username: "arun", PasswordHash: hash, Role: user.RoleUser, Name: "Arun", Department: "Production", AssignedShift: shift.TypeA, LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
			{ID: "3", Username: "meena", PasswordHash: hash, Role: user.RoleUser, Name: "Meena", Department: "Quality", AssignedShift: shift.TypeB, LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
			{ID: "4", Username: "ravi", PasswordHash: hash, Role: user.RoleUser, Name: "Ravi", Department: "Production", AssignedShift: shift.TypeC, LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
			{ID: "5", Username: "priya", PasswordHash: hash, Role: user.RoleUser, Name: "Priya", Department: "HR", AssignedShift: shift.TypeGeneral, LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
			{ID: "admin", Username: "admin", PasswordHash: hash, Role: user.RoleAdmin, Name: "Administrator", Department: "Management", LeaveBalance: user.LeaveBalance{Casual: 99, Sick: 99}},
		},
		Records:  seedRecords(now),
		Holidays: seedHolidays(year),
	}
}

func seedHolidays(year int) []holiday.Holiday {
	return []holiday.Holiday{
		{ID: "h1", Date: fmt.Sprintf("%d-01-01", year), Name: "New Year"},
		{ID: "h2", Date: fmt.Sprintf("%d-01-14", year), Name: "Pongal"},
		{ID: "h3", Date: fmt.Sprintf("%d-05-01", year), Name: "May Day"},
		{ID: "h4", Date: fmt.Sprintf("%d-08-15", year), Name: "Independence Day"},
		{ID: "h5", Date: fmt.Sprintf("%d-10-02", year), Name: "Gandhi Jayanthi"},
		{ID: "h6", Date: fmt.Sprintf("%d-12-25", year), Name: "Christmas"},
	}
}

func seedRecords(now time.Time) []attendance.Record {
	day := func(offset int) string {
		return now.AddDate(0, 0, -offset).Format("2006-01-02")
	}
	return []attendance.Record{
		{ID: "rec_k1", UserID: "1", Date: day(1), CheckIn: ptr("09:25"), CheckOut: ptr("17:10"), Shift: shift.TypeGeneral, Status: attendance.StatusPresent, LateMinutes: 0},
		{ID: "rec_k2", UserID: "1", Date: day(2), CheckIn: ptr("09:45"), CheckOut: ptr("17:05"), Shift: shift.TypeGeneral, Status: attendance.StatusLatePresent, LateMinutes: 15},
		{ID: "rec_k3", UserID: "1", Date: day(3), CheckIn: ptr("09:20"), CheckOut: ptr("17:30"), Shift: shift.TypeGeneral, Status: attendance.StatusPresent, LateMinutes: 0},
		{ID: "rec_k4", UserID: "1", Date: day(4), Shift: shift.TypeGeneral, Status: attendance.StatusAbsent, LateMinutes: 0},
		{ID: "rec_a1", UserID: "2", Date: day(1), CheckIn: ptr("06:28"), CheckOut: ptr("14:35"), Shift: shift.TypeA, Status: attendance.StatusPresent, LateMinutes: 0},
		{ID: "rec_a2", UserID: "2", Date: day(2), CheckIn: ptr("06:50"), CheckOut: ptr("14:30"), Shift: shift.TypeA, Status: attendance.StatusLatePresent, LateMinutes: 20},
		{ID: "rec_m1", UserID: "3", Date: day(1), CheckIn: ptr("14:25"), CheckOut: ptr("22:35"), Shift: shift.TypeB, Status: attendance.StatusPresent, LateMinutes: 0},
		{ID: "rec_m2", UserID: "3", Date: day(2), CheckIn: ptr("14:40"), CheckOut: ptr("22:30"), Shift: shift.TypeB, Status: attendance.StatusLatePresent, LateMinutes: 10},
	}
}

func ptr(s string) *string { return &s }

func mustHash(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
