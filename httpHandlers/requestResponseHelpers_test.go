package httpHandlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentorConnect/utils"
)

func TestWriteErrorResponse(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{utils.TimeSlotNotAvailable, http.StatusConflict, `{"success":false,"message":"Time slot not available"}`},
		{fmt.Errorf("booking: %w", utils.MentorNotFound), http.StatusNotFound, `{"success":false,"message":"Mentor not found"}`},
		{utils.NoCompletedMeeting, http.StatusPreconditionFailed, `{"success":false,"message":"You must complete a meeting with the mentor before leaving a review"}`},
		{utils.NewValidationError("topic is required"), http.StatusBadRequest, `{"success":false,"message":"topic is required"}`},
		{errors.New("connection refused to 10.0.0.3"), http.StatusInternalServerError, `{"success":false,"message":"Server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeErrorResponse(rec, httptest.NewRequest(http.MethodGet, "/", nil), "test", tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5123"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "203.0.113.7"
	assert.Equal(t, "203.0.113.7", clientIP(req))
}
