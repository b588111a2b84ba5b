package httpHandlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentorConnect/model"
	"mentorConnect/utils"
)

func (h *Handlers) HandleGetMentorAvailability(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.GetMentorAvailability(r.Context(), chi.URLParam(r, "mentorId"), chi.URLParam(r, "date"))
	if err != nil {
		writeErrorResponse(w, r, "HandleGetMentorAvailability", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "availableSlots": slots})
}

func (h *Handlers) HandleBookMeeting(w http.ResponseWriter, r *http.Request) {
	var request model.BookingRequest
	if err := parseJSONRequest(r, &request); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from meeting booking request")
		return
	}
	meeting, err := h.service.BookMeeting(r.Context(), getUserIdFromRequest(r), request)
	if errors.Is(err, utils.NotificationNotCreated) {
		writeJSONResponse(w, r, http.StatusCreated, render.M{
			"success":          true,
			"message":          "Meeting booked, but the mentor could not be notified",
			"meeting":          meeting,
			"notificationSent": false,
		})
		return
	}
	if err != nil {
		writeErrorResponse(w, r, "HandleBookMeeting", err)
		return
	}
	writeJSONResponse(w, r, http.StatusCreated, render.M{
		"success":          true,
		"message":          "Meeting booked successfully",
		"meeting":          meeting,
		"notificationSent": true,
	})
}

func (h *Handlers) HandleGetUserMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.service.ListMyMeetings(r.Context(), getUserIdFromRequest(r))
	if err != nil {
		writeErrorResponse(w, r, "HandleGetUserMeetings", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "meetings": meetings})
}

func (h *Handlers) HandleConfirmMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := h.service.ConfirmMeeting(r.Context(), getUserIdFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, r, "HandleConfirmMeeting", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "message": "Meeting confirmed", "meeting": meeting})
}

func (h *Handlers) HandleCancelMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := h.service.CancelMeeting(r.Context(), getUserIdFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, r, "HandleCancelMeeting", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "message": "Meeting cancelled", "meeting": meeting})
}
