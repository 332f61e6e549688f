package mapper

import (
	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/model"
)

type SystemLogMapper struct{}

func NewSystemLogMapper() *SystemLogMapper {
	return &SystemLogMapper{}
}

func (m *SystemLogMapper) ToEntity(l *model.SystemLog) *entity.SystemLog {
	if l == nil {
		return nil
	}

	return &entity.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *SystemLogMapper) ToModel(l *entity.SystemLog) *model.SystemLog {
	if l == nil {
		return nil
	}

	return &model.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}
