package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/rohits-web03/qrdrop/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/qrdrop/internal/api/handlers"
	"github.com/rohits-web03/qrdrop/internal/api/middleware"
	"github.com/rohits-web03/qrdrop/internal/config"
	"github.com/rs/cors"
)

// SetupRouter wires every route. uploadsDir, when non-empty, is served
// statically under /uploads/ — the predictable retrieval prefix for locally
// stored binaries. Uploading works anonymously; listing requires a token.
func SetupRouter(cfg *config.Config, h *handlers.Handler, uploadsDir string) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	if uploadsDir != "" {
		mainMux.Handle("/uploads/",
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))),
		)
	}

	requireAuth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("/signup", h.Signup)
	apiMux.HandleFunc("/login", h.Login)
	apiMux.HandleFunc("/insights", h.GetInsights)
	apiMux.HandleFunc("/auth/google/login", h.GoogleLogin)
	apiMux.HandleFunc("/auth/google/callback", h.GoogleCallback)

	// ---------- GATED ROUTES ----------
	apiMux.Handle("/upload", optionalAuth(http.HandlerFunc(h.Upload)))
	apiMux.Handle("/files", requireAuth(http.HandlerFunc(h.ListFiles)))
	apiMux.Handle("/auth/logout", requireAuth(http.HandlerFunc(h.Logout)))

	mainMux.Handle("/api/",
		http.StripPrefix("/api", apiMux),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
