package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muktalchal/estate-api/internal/listing"
)

type createListingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// handleListListings returns all property listing documents.
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.listings.List(r.Context())
	if err != nil {
		s.logger.Error("list listings failed", "error", err)
		writeInternalError(w, "failed to list listings")
		return
	}
	if listings == nil {
		listings = []listing.Listing{}
	}

	writeJSON(w, http.StatusOK, listings)
}

// handleGetListing returns a single listing by ID.
func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid listing id")
		return
	}

	l, err := s.listings.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			writeNotFound(w, "listing not found")
			return
		}
		s.logger.Error("get listing failed", "error", err, "listing_id", id.Hex())
		writeInternalError(w, "failed to get listing")
		return
	}

	writeJSON(w, http.StatusOK, l)
}

// handleCreateListing inserts a new property listing.
func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	l := &listing.Listing{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}

	if err := s.listings.Create(r.Context(), l); err != nil {
		s.logger.Error("create listing failed", "error", err)
		writeInternalError(w, "failed to add listing")
		return
	}

	s.logger.Info("listing created", "listing_id", l.ID.Hex())
	writeJSON(w, http.StatusCreated, l)
}

// handleDeleteListing removes a listing by ID.
//
// Deletion is idempotent: an unknown ID reports deleted_count 0 rather than
// 404, matching what the deployed clients expect from this route.
func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid listing id")
		return
	}

	deleted, err := s.listings.Delete(r.Context(), id)
	if err != nil {
		s.logger.Error("delete listing failed", "error", err, "listing_id", id.Hex())
		writeInternalError(w, "failed to delete listing")
		return
	}

	s.logger.Info("listing deleted", "listing_id", id.Hex(), "deleted_count", deleted)
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted_count": deleted,
	})
}
