package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeIdeas   ContentType = "ideas"
	ContentTypeOutline ContentType = "outline"
	ContentTypeDraft   ContentType = "draft"
)

// ValidContentType reports whether t is one of the three known modes.
func ValidContentType(t string) bool {
	switch ContentType(t) {
	case ContentTypeIdeas, ContentTypeOutline, ContentTypeDraft:
		return true
	}
	return false
}

type Content struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Content     string
	ContentType ContentType
	Tags        []string
	Niche       string
	Audience    string
	WordCount   int
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
