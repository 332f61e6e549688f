package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/pkg/logger"
	"contentcraft-be/internal/repository/specification"
	"contentcraft-be/internal/repository/unitofwork"
	"contentcraft-be/pkg/events"
	pktNats "contentcraft-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
)

type IContentService interface {
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveContentRequest) (*dto.ContentResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ContentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, query *dto.ListContentQuery) ([]*dto.ContentResponse, error)
}

type contentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IContentService {
	return &contentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           sysLogger,
	}
}

// deriveWordCount counts whitespace-delimited tokens of the trimmed body.
func deriveWordCount(body string) int {
	return len(strings.Fields(strings.TrimSpace(body)))
}

// dedupeTags drops repeated tags while keeping first-seen order.
func dedupeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

func normalizeContentType(contentType string) (entity.ContentType, error) {
	if contentType == "" {
		return entity.ContentTypeDraft, nil
	}
	if !entity.ValidContentType(contentType) {
		return "", apperrors.NewValidation("Content type must be one of: ideas, outline, draft")
	}
	return entity.ContentType(contentType), nil
}

func toContentResponse(c *entity.Content) *dto.ContentResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.ContentResponse{
		Id:          c.Id,
		Title:       c.Title,
		Content:     c.Content,
		ContentType: string(c.ContentType),
		Tags:        tags,
		Niche:       c.Niche,
		Audience:    c.Audience,
		WordCount:   c.WordCount,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *contentService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveContentRequest) (*dto.ContentResponse, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Content)
	if title == "" || body == "" {
		return nil, apperrors.NewValidation("Title and content are required")
	}

	contentType, err := normalizeContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	wordCount := deriveWordCount(body)
	if req.WordCount != nil {
		wordCount = *req.WordCount
	}

	now := time.Now()
	// Owner always comes from the resolved identity, never from the payload.
	content := entity.Content{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       title,
		Content:     body,
		ContentType: contentType,
		Tags:        dedupeTags(req.Tags),
		Niche:       strings.TrimSpace(req.Niche),
		Audience:    strings.TrimSpace(req.Audience),
		WordCount:   wordCount,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContentRepository().Create(ctx, &content); err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.publishContentEvent(ctx, "CONTENT_CREATED", &content)

	return toContentResponse(&content), nil
}

func (s *contentService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	content, err := uow.ContentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if content == nil {
		return nil, apperrors.NewNotFound("Content")
	}

	return toContentResponse(content), nil
}

func (s *contentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Content)
	if title == "" || body == "" {
		return nil, apperrors.NewValidation("Title and content are required")
	}

	contentType, err := normalizeContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	content, err := uow.ContentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if content == nil {
		return nil, apperrors.NewNotFound("Content")
	}

	wordCount := deriveWordCount(body)
	if req.WordCount != nil {
		wordCount = *req.WordCount
	}

	// Concurrent updates to the same record are last-write-wins; there is
	// no version token on content records.
	content.Title = title
	content.Content = body
	content.ContentType = contentType
	content.Tags = dedupeTags(req.Tags)
	content.Niche = strings.TrimSpace(req.Niche)
	content.Audience = strings.TrimSpace(req.Audience)
	content.WordCount = wordCount
	content.IsPublished = req.IsPublished
	content.UpdatedAt = time.Now()

	if err := uow.ContentRepository().Update(ctx, content); err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.publishContentEvent(ctx, "CONTENT_UPDATED", content)

	return toContentResponse(content), nil
}

func (s *contentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	content, err := uow.ContentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return apperrors.NewStorage(err)
	}
	if content == nil {
		return apperrors.NewNotFound("Content")
	}

	if err := uow.ContentRepository().Delete(ctx, id); err != nil {
		return apperrors.NewStorage(err)
	}

	s.publishContentEvent(ctx, "CONTENT_DELETED", content)

	return nil
}

func (s *contentService) List(ctx context.Context, userId uuid.UUID, query *dto.ListContentQuery) ([]*dto.ContentResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}
	if query.Type != "" {
		if !entity.ValidContentType(query.Type) {
			return nil, apperrors.NewValidation("Type must be one of: ideas, outline, draft")
		}
		specs = append(specs, specification.ByContentType{ContentType: query.Type})
	}
	specs = append(specs,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ContentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	response := make([]*dto.ContentResponse, len(records))
	for i, content := range records {
		response[i] = toContentResponse(content)
	}
	return response, nil
}

// publishContentEvent fans a mutation out to the audit pipeline and the
// external event bus. Both are auxiliary; a failure is logged, never
// returned to the caller whose write already succeeded.
func (s *contentService) publishContentEvent(ctx context.Context, eventType string, content *entity.Content) {
	msgPayload := dto.ContentEventMessage{
		EventType: eventType,
		ContentId: content.Id,
		UserId:    content.UserId,
		Title:     content.Title,
	}
	if msgJson, err := json.Marshal(msgPayload); err != nil {
		s.logger.Warn("content", "Failed to marshal audit message", map[string]interface{}{
			"error":      err.Error(),
			"event_type": eventType,
		})
	} else if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("content", "Failed to publish audit message", map[string]interface{}{
			"error":      err.Error(),
			"event_type": eventType,
		})
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"content_id": content.Id,
				"user_id":    content.UserId,
				"title":      content.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("content", "Failed to publish domain event", map[string]interface{}{
				"error":      err.Error(),
				"event_type": eventType,
			})
		}
	}
}
