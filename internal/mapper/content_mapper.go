package mapper

import (
	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/model"

	"gorm.io/datatypes"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToEntity(c *model.Content) *entity.Content {
	if c == nil {
		return nil
	}

	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)

	return &entity.Content{
		Id:          c.Id,
		UserId:      c.UserId,
		Title:       c.Title,
		Content:     c.Content,
		ContentType: entity.ContentType(c.ContentType),
		Tags:        tags,
		Niche:       c.Niche,
		Audience:    c.Audience,
		WordCount:   c.WordCount,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ContentMapper) ToModel(c *entity.Content) *model.Content {
	if c == nil {
		return nil
	}

	return &model.Content{
		Id:          c.Id,
		UserId:      c.UserId,
		Title:       c.Title,
		Content:     c.Content,
		ContentType: string(c.ContentType),
		Tags:        datatypes.NewJSONSlice(c.Tags),
		Niche:       c.Niche,
		Audience:    c.Audience,
		WordCount:   c.WordCount,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ContentMapper) ToEntities(records []*model.Content) []*entity.Content {
	entities := make([]*entity.Content, len(records))
	for i, c := range records {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
