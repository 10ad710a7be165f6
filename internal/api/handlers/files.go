package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/qrdrop/internal/api/middleware"
	"github.com/rohits-web03/qrdrop/internal/insights"
	"github.com/rohits-web03/qrdrop/internal/utils"
)

// GET /api/files
// ListFiles godoc
// @Summary List the authenticated user's uploads
// @Description Returns the caller's file records, newest first.
// @Tags Files
// @Produce json
// @Success 200 {array} models.FileRecord
// @Failure 401 {object} utils.Message
// @Router /api/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.files.ListByOwner(r.Context(), userID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to list files")
		return
	}

	utils.JSONResponse(w, http.StatusOK, records)
}

type insightsRequest struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

// POST /api/insights
// GetInsights godoc
// @Summary Annotate a file from its metadata
// @Description Content-blind, best-effort annotation. Always returns three non-empty fields; provider failures degrade to defaults.
// @Tags Files
// @Accept json
// @Produce json
// @Param body body insightsRequest true "File metadata"
// @Success 200 {object} insights.Insights
// @Failure 400 {object} utils.Message
// @Router /api/insights [post]
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.FileName == "" {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	annotation := h.annotator.Annotate(r.Context(), insights.FileMeta{
		Name:      input.FileName,
		MimeType:  input.FileType,
		SizeBytes: input.FileSize,
	})
	utils.JSONResponse(w, http.StatusOK, annotation)
}
