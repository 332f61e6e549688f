package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Content struct {
	Id          uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Title       string                        `gorm:"type:varchar(255);not null"`
	Content     string                        `gorm:"type:text;not null"`
	ContentType string                        `gorm:"type:varchar(20);not null;default:'draft';index"`
	Tags        datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	Niche       string                        `gorm:"type:varchar(255)"`
	Audience    string                        `gorm:"type:varchar(255)"`
	WordCount   int                           `gorm:"not null;default:0"`
	IsPublished bool                          `gorm:"not null;default:false"`
	CreatedAt   time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                     `gorm:"autoUpdateTime;index"`
}

func (Content) TableName() string {
	return "content"
}
