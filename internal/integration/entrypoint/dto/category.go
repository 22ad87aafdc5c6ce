package dto

import "github.com/finance-tracker/planner/internal/domain/entity"

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// RenameCategoryRequest represents the request body for renaming a category.
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
}

// ToCategoryResponses converts a list of categories.
func ToCategoryResponses(cats []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = ToCategoryResponse(c)
	}
	return out
}
