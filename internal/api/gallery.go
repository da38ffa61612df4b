package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muktalchal/estate-api/internal/gallery"
)

type createImageRequest struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// handleListGalleryImages returns all gallery image documents.
func (s *Server) handleListGalleryImages(w http.ResponseWriter, r *http.Request) {
	images, err := s.gallery.List(r.Context())
	if err != nil {
		s.logger.Error("list gallery images failed", "error", err)
		writeInternalError(w, "failed to list images")
		return
	}
	if images == nil {
		images = []gallery.Image{}
	}

	writeJSON(w, http.StatusOK, images)
}

// handleCreateGalleryImage inserts a new gallery image.
func (s *Server) handleCreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req createImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.URL == "" {
		writeBadRequest(w, "url is required")
		return
	}

	img := &gallery.Image{
		URL:   req.URL,
		Title: req.Title,
	}

	if err := s.gallery.Create(r.Context(), img); err != nil {
		s.logger.Error("create gallery image failed", "error", err)
		writeInternalError(w, "failed to add image")
		return
	}

	s.logger.Info("gallery image created", "image_id", img.ID.Hex())
	writeJSON(w, http.StatusCreated, img)
}

// handleDeleteGalleryImage removes a gallery image by ID.
func (s *Server) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid image id")
		return
	}

	if err := s.gallery.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			writeNotFound(w, "Image not found")
			return
		}
		s.logger.Error("delete gallery image failed", "error", err, "image_id", id.Hex())
		writeInternalError(w, "Failed to delete image")
		return
	}

	s.logger.Info("gallery image deleted", "image_id", id.Hex())
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Image deleted successfully",
	})
}
