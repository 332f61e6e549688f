package specification

import "gorm.io/gorm"

// ByContentType restricts results to one content type (ideas/outline/draft).
type ByContentType struct {
	ContentType string
}

func (s ByContentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content_type = ?", s.ContentType)
}
