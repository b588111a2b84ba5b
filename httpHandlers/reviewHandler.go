package httpHandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentorConnect/model"
)

func (h *Handlers) HandleAddMentorReview(w http.ResponseWriter, r *http.Request) {
	var review model.ReviewRequest
	if err := parseJSONRequest(r, &review); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON mentor review")
		return
	}
	mentor, err := h.service.AddMentorReview(r.Context(), getUserIdFromRequest(r), chi.URLParam(r, "id"), review)
	if err != nil {
		writeErrorResponse(w, r, "HandleAddMentorReview", err)
		return
	}
	writeJSONResponse(w, r, http.StatusCreated, render.M{
		"success": true,
		"message": "Review added successfully",
		"rating":  mentor.Rating,
		"reviews": mentor.Reviews,
	})
}
