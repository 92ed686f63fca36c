package handlers

import (
	"net/http"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/storage"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

// 10 MB, enough for phone photos of paper receipts.
const maxUploadBytes = 10 << 20

type FileHandler struct {
	store *storage.S3Store
}

func NewFileHandler(store *storage.S3Store) *FileHandler {
	return &FileHandler{store: store}
}

// Upload handles POST /api/files/upload (multipart form, field "file").
// Returns the public URL to store on the owning record.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.Error(w, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.store.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]string{"url": url})
}
