package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-campus-blog/internal/app"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/go-chi/chi/v5"
)

const sessionCookieName = "jwt"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Signup(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgSignupTokenSent)
}

func (h *Handler) resendSignupToken(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResendSignupToken(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgSignupTokenSent)
}

func (h *Handler) confirmSignup(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.ConfirmSignup(r.Context(), chi.URLParam(r, "token")); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgAccountCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Status: models.StatusSuccess,
		Token:  token.SignedString,
		Data:   models.LoginData{User: user.Public()},
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgResetTokenSent)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), chi.URLParam(r, "token"), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgPasswordChanged)
}

// sessionCookie carries the session token for browser clients. It is never
// readable from scripts and is Secure in production.
func (h *Handler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieDuration),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	}
}
