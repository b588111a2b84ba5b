package httpHandlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"mentorConnect/auth"
	"mentorConnect/model"
)

type ctxKey string

const userIdKey ctxKey = "uid"

func getUserIdFromRequest(r *http.Request) string {
	userId, ok := r.Context().Value(userIdKey).(string)
	if !ok {
		log.Printf("getUserIdFromRequest: no user id in context\n")
	}
	return userId
}

// JWTMiddleware reads "Authorization: Bearer <jwt>" and puts the caller's id in the request context.
func (h *Handlers) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if raw == "" {
			writeMessageResponse(w, r, http.StatusUnauthorized, "Missing auth token")
			return
		}
		claims, err := auth.ParseToken(raw, h.tokenSecret)
		if err != nil {
			writeMessageResponse(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), userIdKey, claims.UserId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var credentials model.Auth
	if err := parseJSONRequest(r, &credentials); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from request")
		return
	}
	user, err := h.service.Register(r.Context(), credentials)
	if err != nil {
		writeErrorResponse(w, r, "HandleRegister", err)
		return
	}
	h.writeTokenResponse(w, r, http.StatusCreated, user)
}

func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var credentials model.Auth
	if err := parseJSONRequest(r, &credentials); err != nil {
		writeMessageResponse(w, r, http.StatusBadRequest, "Error parsing JSON from request")
		return
	}
	user, err := h.service.Authenticate(r.Context(), credentials)
	if err != nil {
		writeErrorResponse(w, r, "HandleLogin", err)
		return
	}
	h.writeTokenResponse(w, r, http.StatusOK, user)
}

func (h *Handlers) writeTokenResponse(w http.ResponseWriter, r *http.Request, status int, user *model.User) {
	token, err := auth.MakeToken(user.Id.Hex(), h.tokenSecret, h.tokenTTL)
	if err != nil {
		writeErrorResponse(w, r, "writeTokenResponse", err)
		return
	}
	writeJSONResponse(w, r, status, model.TokenResponse{Success: true, Token: token, User: user})
}

func (h *Handlers) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetProfile(r.Context(), getUserIdFromRequest(r))
	if err != nil {
		writeErrorResponse(w, r, "HandleGetProfile", err)
		return
	}
	writeJSONResponse(w, r, http.StatusOK, user)
}
