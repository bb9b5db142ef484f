package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/healncure/healncure-backend/internal/content"
	"github.com/healncure/healncure-backend/internal/models"
)

type CategoriesResponse struct {
	Success    bool                     `json:"success"`
	Categories []models.CategorySummary `json:"categories"`
	Total      int                      `json:"total"`
}

type CategoryResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Category *models.Category `json:"category,omitempty"`
}

// GetCategories lists the topic catalog (summaries only, for the home grid).
func GetCategories(w http.ResponseWriter, r *http.Request) {
	all := content.Categories()
	summaries := make([]models.CategorySummary, 0, len(all))
	for _, c := range all {
		summaries = append(summaries, c.Summary())
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: summaries,
		Total:      len(summaries),
	})
}

// GetCategoryBySlug returns one topic with its full causes/symptoms/effects
// details.
func GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, ok := content.CategoryBySlug(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, CategoryResponse{
			Success: false,
			Message: "Category not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, CategoryResponse{
		Success:  true,
		Category: &category,
	})
}
