package http

import (
	"net/http"

	"github.com/smartattend/attendance-backend-go/internal/domain/report"
	"github.com/smartattend/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Attendance implements ReportHandler.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	rows, err := h.reportService.Attendance(r.Context(), search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
