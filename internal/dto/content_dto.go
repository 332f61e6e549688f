package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveContentRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	ContentType string   `json:"content_type" validate:"omitempty,oneof=ideas outline draft"`
	Tags        []string `json:"tags"`
	Niche       string   `json:"niche"`
	Audience    string   `json:"audience"`
	// Pointer so an explicit 0 can be told apart from "not supplied".
	WordCount   *int `json:"word_count" validate:"omitempty,min=0"`
	IsPublished bool `json:"is_published"`
}

type UpdateContentRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	ContentType string    `json:"content_type" validate:"omitempty,oneof=ideas outline draft"`
	Tags        []string  `json:"tags"`
	Niche       string    `json:"niche"`
	Audience    string    `json:"audience"`
	WordCount   *int      `json:"word_count" validate:"omitempty,min=0"`
	IsPublished bool      `json:"is_published"`
}

type ContentResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentType string    `json:"content_type"`
	Tags        []string  `json:"tags"`
	Niche       string    `json:"niche"`
	Audience    string    `json:"audience"`
	WordCount   int       `json:"word_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SaveContentResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Id      uuid.UUID        `json:"id"`
	Content *ContentResponse `json:"content"`
}

type ShowContentResponse struct {
	Success bool             `json:"success"`
	Content *ContentResponse `json:"content"`
}

type UpdateContentResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Content *ContentResponse `json:"content"`
}

type DeleteContentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ListContentQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=ideas outline draft"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListContentResponse struct {
	Success bool               `json:"success"`
	Content []*ContentResponse `json:"content"`
	Total   int                `json:"total"`
}
