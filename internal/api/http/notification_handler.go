package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteSvc.ListNotifications(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.noteSvc.MarkRead(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterNotificationRoutes(protected *mux.Router, noteSvc service.NotificationService) {
	h := NewNotificationHandler(noteSvc)
	protected.HandleFunc("/api/v1/notifications", h.List).Methods("GET")
	protected.HandleFunc("/api/v1/notifications/{id}/read", h.MarkRead).Methods("POST")
}
