package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/models"
	"github.com/rohits-web03/qrdrop/internal/store"
	"github.com/rohits-web03/qrdrop/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse matches what the frontend stores after login.
type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// POST /api/signup
// Signup godoc
// @Summary Register a new account
// @Description Creates a user with a bcrypt-hashed password. No token is issued; log in separately.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentials true "Email and password"
// @Success 201 {object} utils.Message
// @Failure 400 {object} utils.Message
// @Router /api/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "All fields required")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "All fields required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	newUser := models.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	switch err := h.users.Create(r.Context(), &newUser); {
	case err == nil:
		utils.JSONResponse(w, http.StatusCreated, utils.Message{Message: "User created successfully"})
	case errors.Is(err, store.ErrDuplicateEmail):
		utils.JSONError(w, http.StatusBadRequest, "User already exists")
	default:
		utils.JSONError(w, http.StatusInternalServerError, "Error registering user")
	}
}

// POST /api/login
// Login godoc
// @Summary Log in with email and password
// @Description Returns a bearer token and the user's identity. Unknown email and wrong password are indistinguishable.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentials true "Email and password"
// @Success 200 {object} loginResponse
// @Failure 401 {object} utils.Message
// @Router /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "All fields required")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "All fields required")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), input.Email)
	switch {
	case err == nil:
		// user found
	case errors.Is(err, store.ErrNotFound):
		// Same message and shape as a wrong password, to avoid user enumeration.
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		utils.JSONError(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenString, expiration, err := h.issueToken(user)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	h.setSessionCookie(w, tokenString, expiration)

	resp := loginResponse{Token: tokenString}
	resp.User.ID = user.ID.String()
	resp.User.Email = user.Email
	utils.JSONResponse(w, http.StatusOK, resp)
}

// POST /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	isProd := h.cfg.Environment == "production"

	// maxAge < 0 deletes the cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Message{Message: "Logged out successfully"})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiration time.Time) {
	isProd := h.cfg.Environment == "production"

	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiration).Seconds()),
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
}
