package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/api/middleware"
	"github.com/rohits-web03/qrdrop/internal/insights"
	"github.com/rohits-web03/qrdrop/internal/models"
	"github.com/rohits-web03/qrdrop/internal/storage"
	"github.com/rohits-web03/qrdrop/internal/utils"
	"golang.org/x/sync/errgroup"
)

const maxUploadSize = 100 << 20 // 100 MB

// shareExpiry is the advisory lifetime stamped on every record. Nothing
// deletes the binary when it passes.
const shareExpiry = 24 * time.Hour

// ShareResponse is the share state the frontend renders: the QR payload
// (link), its advisory expiry, the record key, and the best-effort insights.
type ShareResponse struct {
	Success  bool              `json:"success"`
	Link     string            `json:"link"`
	Expiry   string            `json:"expiry"`
	Key      string            `json:"key"`
	Insights insights.Insights `json:"insights"`
}

// POST /api/upload
// Upload godoc
// @Summary Upload a single file and receive an ephemeral share link
// @Description Stores the binary, records its metadata with a 24h advisory expiry, and annotates it from metadata alone. Works anonymously; a bearer token attributes the record.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} ShareResponse
// @Failure 400 {object} utils.Message
// @Failure 500 {object} utils.Message
// @Router /api/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid file upload form")
		return
	}

	src, header, err := r.FormFile("file")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer src.Close()

	if header.Filename == "" || header.Size == 0 {
		utils.JSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	storedName, err := utils.GenerateStoredName(header.Filename)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	contentType := header.Header.Get("Content-Type")

	// The binary write and the insight annotation are independent outbound
	// calls; run them concurrently and merge when both settle. The annotator
	// cannot fail the group: it degrades to its fallback internally.
	var (
		path, publicURL string
		annotation      insights.Insights
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var putErr error
		path, publicURL, putErr = h.blobs.Put(ctx, storedName, contentType, src)
		return putErr
	})
	g.Go(func() error {
		annotation = h.annotator.Annotate(r.Context(), insights.FileMeta{
			Name:      header.Filename,
			MimeType:  contentType,
			SizeBytes: header.Size,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		if ce, ok := storage.AsConfigError(err); ok {
			// Operator-facing setup mistake; surface the remediation text.
			log.Println("Storage configuration error:", err)
			utils.JSONError(w, http.StatusInternalServerError, ce.Remediation)
			return
		}
		log.Println("Upload failed:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	createdAt := time.Now()
	record := models.FileRecord{
		ID:           uuid.New(),
		OriginalName: header.Filename,
		StoredName:   storedName,
		SizeBytes:    header.Size,
		MimeType:     contentType,
		Path:         path,
		PublicURL:    publicURL,
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(shareExpiry),
	}
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		record.OwnerID = &userID
	}

	if err := h.files.Append(r.Context(), &record); err != nil {
		log.Println("Failed to record upload metadata:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, ShareResponse{
		Success:  true,
		Link:     record.PublicURL,
		Expiry:   record.ExpiresAt.Format(time.RFC3339),
		Key:      record.ID.String(),
		Insights: annotation,
	})
}
