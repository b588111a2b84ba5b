package httpHandlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentorConnect/model"
	"mentorConnect/mentorship"
)

type Handlers struct {
	service     *mentorship.Service
	tokenSecret string
	tokenTTL    time.Duration
}

func NewHandlers(service *mentorship.Service, tokenSecret string, tokenTTL time.Duration) *Handlers {
	return &Handlers{
		service:     service,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

func (h *Handlers) HandleTest(w http.ResponseWriter, r *http.Request) {
	writeMessageResponse(w, r, http.StatusOK, "Application is running")
}

func (h *Handlers) HandleBecomeMentor(w http.ResponseWriter, r *http.Request) {
	var request model.BecomeMentorRequest
	if err := parseJSONRequest(r, &request); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from request")
		return
	}
	mentor, err := h.service.BecomeMentor(r.Context(), getUserIdFromRequest(r), request)
	if err != nil {
		writeErrorResponse(w, r, "HandleBecomeMentor", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{
		"success": true,
		"message": "Mentor request submitted successfully!",
		"mentor":  mentor,
	})
}

func (h *Handlers) HandleGetMentors(w http.ResponseWriter, r *http.Request) {
	filter, err := parseMentorFilter(r)
	if err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing offset, limit and experience")
		return
	}
	mentors, err := h.service.ListMentors(r.Context(), filter)
	if err != nil {
		writeErrorResponse(w, r, "HandleGetMentors", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "mentors": mentors})
}

func parseMentorFilter(r *http.Request) (model.MentorFilter, error) {
	queryParameters := r.URL.Query()
	filter := model.MentorFilter{
		Skills:   queryParameters["skill"],
		Fields:   queryParameters["field"],
		ByRating: queryParameters.Get("sort") == "rating",
	}
	var err error
	if value := queryParameters.Get("offset"); value != "" {
		if filter.Offset, err = strconv.ParseInt(value, 10, 64); err != nil {
			return filter, err
		}
	}
	if value := queryParameters.Get("limit"); value != "" {
		if filter.Limit, err = strconv.ParseInt(value, 10, 64); err != nil {
			return filter, err
		}
	}
	if value := queryParameters.Get("experience"); value != "" {
		experience, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return filter, err
		}
		filter.MinExperience = float32(experience)
	}
	return filter, nil
}

func (h *Handlers) HandleGetMentorByID(w http.ResponseWriter, r *http.Request) {
	mentor, err := h.service.GetMentor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, r, "HandleGetMentorByID", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, render.M{"success": true, "mentor": mentor})
}

func (h *Handlers) HandleContactMentor(w http.ResponseWriter, r *http.Request) {
	var request model.ContactRequest
	if err := parseJSONRequest(r, &request); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from request")
		return
	}
	if err := h.service.ContactMentor(r.Context(), getUserIdFromRequest(r), request); err != nil {
		writeErrorResponse(w, r, "HandleContactMentor", err)
		return
	}
	writeMessageResponse(w, r, http.StatusOK, "Contact request sent successfully")
}
