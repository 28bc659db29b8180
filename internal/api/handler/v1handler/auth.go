package v1handler

import (
	"net/http"
	"safescout/internal/auth"
	"safescout/pkg/domain"
)

// refreshCookie is the HTTP-only cookie carrying the refresh token.
const refreshCookie = "safescout_refresh"

type registerRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type sessionResponse struct {
	User   *domain.User   `json:"user,omitempty"`
	Tokens auth.TokenPair `json:"tokens"`
}

// setRefreshCookie mirrors the refresh token into an HTTP-only cookie so
// browser clients don't have to store it themselves.
func setRefreshCookie(w http.ResponseWriter, pair auth.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    pair.RefreshToken,
		Path:     "/v1/auth",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, pair, err := h.deps.Auth.Register(r.Context(), auth.RegisterReq{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	setRefreshCookie(w, pair)
	writeJSON(w, http.StatusCreated, sessionResponse{User: user, Tokens: pair})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, pair, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, sessionResponse{User: user, Tokens: pair})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh accepts the refresh token either in the JSON body or in the
// HTTP-only cookie set at login.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	// body is optional when the cookie is present
	_ = decodeBody(r, &req)
	if req.RefreshToken == "" {
		if cookie, err := r.Cookie(refreshCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}

	pair, err := h.deps.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)

		return
	}

	setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, sessionResponse{Tokens: pair})
}

// Logout clears the refresh cookie. Access tokens stay valid until they
// expire; the short access TTL bounds the window.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the account behind the presented access token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.UserByID(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}
