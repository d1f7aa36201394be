package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartattend/attendance-backend-go/internal/domain/broadcast"
	"github.com/smartattend/attendance-backend-go/internal/handler/http/response"
)

type BroadcastHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BroadcastHandlerImpl struct {
	broadcastService broadcast.Service
}

func NewBroadcastHandler(broadcastService broadcast.Service) BroadcastHandler {
	return &BroadcastHandlerImpl{broadcastService: broadcastService}
}

// Send implements BroadcastHandler.
func (b *BroadcastHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	senderID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req broadcast.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	msg, err := b.broadcastService.Send(r.Context(), senderID, req)
	if err != nil {
		slog.Error("Send broadcast service error", "sender_id", senderID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Broadcast sent", msg)
}

// List implements BroadcastHandler.
func (b *BroadcastHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	messages, err := b.broadcastService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}

// Delete implements BroadcastHandler.
func (b *BroadcastHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Broadcast ID is required", nil)
		return
	}

	if err := b.broadcastService.Remove(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
