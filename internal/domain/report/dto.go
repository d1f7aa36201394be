package report

import (
	"context"
)

// Row is one consolidated attendance entry joined with the employee's
// profile, in the column order the CSV exporter consumes.
type Row struct {
	Date        string `json:"date"`
	Employee    string `json:"employee"`
	Department  string `json:"department"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Shift       string `json:"shift"`
	Status      string `json:"status"`
	LateMinutes int    `json:"late_minutes"`
}

// Service builds consolidated admin reports.
type Service interface {
	// Attendance returns all records newest-first, joined with employee
	// name and department, filtered by the search term (matches name,
	// department, or date substring; empty matches everything).
	Attendance(ctx context.Context, search string) ([]Row, error)
}
