package utils

import (
	"encoding/json"
	"net/http"
)

// Message is the error/status envelope: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// JSONResponse sends any payload as JSON with the given status code.
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONError sends a {"message": ...} body with the given status code.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Message{Message: message})
}
