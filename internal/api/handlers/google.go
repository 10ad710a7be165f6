package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/models"
	"github.com/rohits-web03/qrdrop/internal/store"
	"github.com/rohits-web03/qrdrop/internal/utils"
)

// GET /api/auth/google/login
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		utils.JSONError(w, http.StatusNotImplemented, "Google login is not configured")
		return
	}

	flow := r.URL.Query().Get("redirect") // "login" or "register"
	if flow == "" {
		flow = "login"
	}

	state, err := oauthState(map[string]string{"flow": flow})
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to generate OAuth state")
		return
	}

	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GET /api/auth/google/callback
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		utils.JSONError(w, http.StatusNotImplemented, "Google login is not configured")
		return
	}

	stateData, err := decodeOauthState(r.FormValue("state"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	flow := stateData["flow"]

	token, err := h.oauth.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		log.Println("OAuth code exchange failed:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Code exchange failed")
		return
	}

	client := h.oauth.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &googleUser); err != nil || googleUser.Email == "" {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to parse user info")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), googleUser.Email)
	frontend := h.cfg.Google.FrontendURL

	switch flow {
	case "register":
		if err == nil {
			http.Redirect(w, r, frontend+"/login?error=user_already_exists", http.StatusTemporaryRedirect)
			return
		}
		newUser := models.User{
			ID:        uuid.New(),
			Email:     googleUser.Email,
			Password:  "", // Google-authenticated
			CreatedAt: time.Now(),
		}
		if err := h.users.Create(r.Context(), &newUser); err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		user = &newUser

	default: // login
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, frontend+"/register?error=user_not_found", http.StatusTemporaryRedirect)
			return
		} else if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	tokenString, expiration, err := h.issueToken(user)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}
	h.setSessionCookie(w, tokenString, expiration)

	redirectURL := frontend + "/?status=success_login"
	if flow == "register" {
		redirectURL = frontend + "/?status=success_register"
	}
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
