package handlers

import (
	"errors"
	"net/http"

	"instituteCMS/internal/models"
)

type AdminResponse struct {
	AdminID string `json:"_id"`
	Email   string `json:"email"`
}

const invalidCredentials = "Invalid email or password"

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			WriteError(w, invalidCredentials, http.StatusUnauthorized)
			return
		}
		h.handleError(w, r, err, invalidCredentials, "Server error in login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.AccessTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	writeSuccess(w, AdminResponse{AdminID: admin.AdminID, Email: admin.Email}, http.StatusOK)
}

// CheckAuth reports the admin behind the session cookie.
func (h *Handlers) CheckAuth(w http.ResponseWriter, r *http.Request) {
	admin, ok := AdminFromContext(r.Context())
	if !ok {
		token := TokenFromRequest(r, h.Cfg.CookieName)
		if token == "" {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		var err error
		admin, err = h.AuthService.GetAdminFromToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				WriteError(w, "Not authenticated", http.StatusUnauthorized)
				return
			}
			h.handleError(w, r, err, "Not authenticated", "Server error in auth check")
			return
		}
	}

	writeSuccess(w, AdminResponse{AdminID: admin.AdminID, Email: admin.Email}, http.StatusOK)
}
