package api

import (
	"encoding/json"
	"net/http"

	"github.com/muktalchal/estate-api/internal/blog"
)

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Author   string `json:"author,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// handleListPosts returns all blog post documents.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.blogs.List(r.Context())
	if err != nil {
		s.logger.Error("list blog posts failed", "error", err)
		writeInternalError(w, "failed to list posts")
		return
	}
	if posts == nil {
		posts = []blog.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

// handleCreatePost inserts a new blog post.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	p := &blog.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		ImageURL: req.ImageURL,
	}

	if err := s.blogs.Create(r.Context(), p); err != nil {
		s.logger.Error("create blog post failed", "error", err)
		writeInternalError(w, "Failed to add blog")
		return
	}

	s.logger.Info("blog post created", "post_id", p.ID.Hex())
	writeJSON(w, http.StatusCreated, p)
}
