package server

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack-labs/healthtrack/constants"
)

// maxUploadBytes caps one document at 25 MiB, comfortably above any
// phone-camera scan.
const maxUploadBytes = 25 << 20

type uploadResponse struct {
	Kind      constants.DocumentKind `json:"kind"`
	PublicURL string                 `json:"public_url"`
	Results   any                    `json:"results"`
}

// handleUpload accepts one multipart document and runs the pipeline
// synchronously, returning the stored record ids.
func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", "multipart field 'file' is required")
		return
	}
	if header.Size > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file too large", "limit is 25 MiB")
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		respondError(c, http.StatusBadRequest, "unsupported file type", "allowed: pdf, jpg, jpeg, png, webp")
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", "could not open uploaded file")
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", "could not read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	result, err := s.processor.ProcessUpload(c.Request.Context(), s.cfg.Patient.ID, header.Filename, mimeType, data)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Kind:      result.Extracted.Kind,
		PublicURL: result.PublicURL,
		Results:   result.Records,
	})
}
