package httpHandlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/render"

	"mentorConnect/utils"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func parseJSONRequest(r *http.Request, payload any) error {
	err := render.DecodeJSON(r.Body, payload)
	if err != nil {
		log.Printf("Error parsing JSON request(%s %s): %v\n", r.Method, r.URL.Path, err)
	}
	return err
}

func writeMessageResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, messageResponse{Success: status < http.StatusBadRequest, Message: message})
}

func writeJSONResponse(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

// writeErrorResponse answers with the message of an AppError, or logs anything
// else and hides it behind a generic server error.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		writeMessageResponse(w, r, statusForKind(appErr.Kind), appErr.Message)
		return
	}
	log.Printf("%s: %v\n", operation, err)
	writeMessageResponse(w, r, http.StatusInternalServerError, "Server error")
}

func statusForKind(kind utils.Kind) int {
	switch kind {
	case utils.KindValidation:
		return http.StatusBadRequest
	case utils.KindNotFound:
		return http.StatusNotFound
	case utils.KindConflict:
		return http.StatusConflict
	case utils.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case utils.KindUnauthorized:
		return http.StatusUnauthorized
	case utils.KindForbidden:
		return http.StatusForbidden
	case utils.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
