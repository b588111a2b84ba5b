package httpHandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *Handlers) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.ListNotifications(r.Context(), getUserIdFromRequest(r))
	if err != nil {
		writeErrorResponse(w, r, "HandleGetNotifications", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "notifications": notifications})
}

func (h *Handlers) HandleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkNotificationRead(r.Context(), getUserIdFromRequest(r), chi.URLParam(r, "id")); err != nil {
		writeErrorResponse(w, r, "HandleMarkNotificationRead", err)
		return
	}
	writeMessageResponse(w, r, http.StatusOK, "Notification marked as read")
}
