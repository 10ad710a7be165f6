package handlers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohits-web03/qrdrop/internal/config"
	"github.com/rohits-web03/qrdrop/internal/insights"
	"github.com/rohits-web03/qrdrop/internal/models"
	"github.com/rohits-web03/qrdrop/internal/storage"
	"github.com/rohits-web03/qrdrop/internal/store"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// tokenTTL is how long issued session tokens stay valid. Expiry past that is
// whatever the JWT library enforces; there is no refresh or revocation.
const tokenTTL = 24 * time.Hour

// Handler carries every dependency the HTTP handlers need. Constructed once
// in main and passed by reference; there is no package-level state.
type Handler struct {
	cfg       *config.Config
	users     store.UserStore
	files     store.FileStore
	blobs     storage.BlobStore
	annotator insights.Annotator
	oauth     *oauth2.Config // nil when Google login is not configured
}

func New(cfg *config.Config, users store.UserStore, files store.FileStore, blobs storage.BlobStore, annotator insights.Annotator) *Handler {
	h := &Handler{
		cfg:       cfg,
		users:     users,
		files:     files,
		blobs:     blobs,
		annotator: annotator,
	}
	if cfg.Google.ClientID != "" {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return h
}

// Claims is the JWT payload for a logged-in session.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// issueToken signs an HS256 session token for the user.
func (h *Handler) issueToken(user *models.User) (string, time.Time, error) {
	expiration := time.Now().Add(tokenTTL)
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiration, nil
}
