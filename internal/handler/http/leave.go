package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartattend/attendance-backend-go/internal/domain/leave"
	"github.com/smartattend/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	SubmitPermission(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	MyPermissions(w http.ResponseWriter, r *http.Request)

	ListLeaves(w http.ResponseWriter, r *http.Request)
	ListPermissions(w http.ResponseWriter, r *http.Request)
	DecideLeave(w http.ResponseWriter, r *http.Request)
	DecidePermission(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// SubmitLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.SubmitLeave(r.Context(), userID, req)
	if err != nil {
		slog.Error("SubmitLeave service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// SubmitPermission implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitPermission(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.SubmitPermission(r.Context(), userID, req)
	if err != nil {
		slog.Error("SubmitPermission service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission request submitted", created)
}

// MyLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := l.leaveService.MyLeaves(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// MyPermissions implements LeaveHandler.
func (l *LeaveHandlerImpl) MyPermissions(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	perms, err := l.leaveService.MyPermissions(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perms)
}

// ListLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.ListLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListPermissions implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := l.leaveService.ListPermissions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perms)
}

// DecideLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) DecideLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := l.leaveService.DecideLeave(r.Context(), id, leave.Status(req.Status))
	if err != nil {
		slog.Error("DecideLeave service error", "request_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}

// DecidePermission implements LeaveHandler.
func (l *LeaveHandlerImpl) DecidePermission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := l.leaveService.DecidePermission(r.Context(), id, leave.Status(req.Status))
	if err != nil {
		slog.Error("DecidePermission service error", "request_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}
