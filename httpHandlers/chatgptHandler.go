package httpHandlers

import (
	"net/http"

	"github.com/go-chi/render"

	"mentorConnect/model"
)

func (h *Handlers) HandleRecommendMentors(w http.ResponseWriter, r *http.Request) {
	var requestPayload model.RecommendationRequest
	if err := parseJSONRequest(r, &requestPayload); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from request")
		return
	}
	mentors, err := h.service.RecommendMentors(r.Context(), requestPayload)
	if err != nil {
		writeErrorResponse(w, r, "HandleRecommendMentors", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "mentors": mentors})
}
