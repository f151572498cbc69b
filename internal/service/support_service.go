package service

import (
	"context"
	"fmt"
	"time"

	"hr-support-be/internal/constant"
	"hr-support-be/internal/dto"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/pkg/mailer"
	"hr-support-be/internal/pkg/serverutils"
	"hr-support-be/internal/repository/memory"
	"hr-support-be/internal/repository/specification"
	"hr-support-be/internal/repository/unitofwork"
	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const attemptCounterTTL = 24 * time.Hour

type ISupportService interface {
	SubmitQuery(ctx context.Context, req *dto.SubmitQueryRequest) (*dto.SubmitQueryResponse, error)
	ShowConversation(ctx context.Context, id uuid.UUID) (*dto.ShowConversationResponse, error)
	ListConversations(ctx context.Context, userId string, limit, offset int) ([]*dto.ShowConversationResponse, int64, error)
}

type supportService struct {
	uowFactory      unitofwork.RepositoryFactory
	engine          *workflow.Engine
	history         *memory.HistoryStore
	rdb             *redis.Client
	publisher       IPublisherService
	emailService    mailer.IEmailService
	escalationEmail string
	logger          logger.ILogger
}

func NewSupportService(
	uowFactory unitofwork.RepositoryFactory,
	engine *workflow.Engine,
	history *memory.HistoryStore,
	rdb *redis.Client,
	publisher IPublisherService,
	emailService mailer.IEmailService,
	escalationEmail string,
	log logger.ILogger,
) ISupportService {
	return &supportService{
		uowFactory:      uowFactory,
		engine:          engine,
		history:         history,
		rdb:             rdb,
		publisher:       publisher,
		emailService:    emailService,
		escalationEmail: escalationEmail,
		logger:          log,
	}
}

func (s *supportService) SubmitQuery(ctx context.Context, req *dto.SubmitQueryRequest) (*dto.SubmitQueryResponse, error) {
	conversationId := uuid.New()
	if req.ConversationId != nil && *req.ConversationId != uuid.Nil {
		conversationId = *req.ConversationId
	}

	attemptCount := s.nextAttemptCount(ctx, conversationId)
	history := s.resolveHistory(conversationId.String(), req.History)

	result := s.engine.Run(ctx, workflow.Request{
		Query:          req.Query,
		UserID:         req.UserId,
		ConversationID: conversationId.String(),
		History:        history,
		Flags: workflow.Flags{
			IsVIP:        req.IsVIP,
			IsRepeat:     req.IsRepeat,
			AttemptCount: attemptCount,
		},
	})

	status := constant.ConversationStatusResolved
	if result.Escalated {
		status = constant.ConversationStatusEscalated
	}

	conversation := &entity.Conversation{
		Id:               conversationId,
		UserId:           req.UserId,
		Query:            req.Query,
		Category:         result.Category,
		Sentiment:        result.Sentiment,
		PriorityScore:    result.PriorityScore,
		Escalated:        result.Escalated,
		EscalationReason: result.EscalationReason,
		Response:         result.Response,
		Status:           status,
		AttemptCount:     attemptCount,
		ProcessingTimeMs: result.ProcessingTime.Milliseconds(),
		CreatedAt:        time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		s.logger.Error("SupportService", "Failed to persist conversation", map[string]interface{}{
			"conversation_id": conversationId.String(),
			"error":           err.Error(),
		})
		return nil, serverutils.NewInternalError("Failed to store conversation", err)
	}

	s.history.Append(conversationId.String(),
		llm.Message{Role: "user", Content: req.Query},
		llm.Message{Role: "assistant", Content: result.Response},
	)

	s.publishOutcome(ctx, conversation)

	if result.Escalated {
		s.alertEscalation(conversation)
	}

	return &dto.SubmitQueryResponse{
		ConversationId:   conversationId,
		Category:         result.Category,
		Sentiment:        result.Sentiment,
		PriorityScore:    result.PriorityScore,
		Escalated:        result.Escalated,
		EscalationReason: result.EscalationReason,
		Response:         result.Response,
		Knowledge:        toKnowledgeSnippets(result.Knowledge),
		AttemptCount:     attemptCount,
		ProcessingTimeMs: result.ProcessingTime.Milliseconds(),
	}, nil
}

func (s *supportService) ShowConversation(ctx context.Context, id uuid.UUID) (*dto.ShowConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to load conversation", err)
	}
	if conversation == nil {
		return nil, serverutils.NewNotFoundError("Conversation not found")
	}
	return toConversationResponse(conversation), nil
}

func (s *supportService) ListConversations(ctx context.Context, userId string, limit, offset int) ([]*dto.ShowConversationResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ConversationRepository()

	var filter []specification.Specification
	if userId != "" {
		filter = append(filter, specification.ByUserId{UserId: userId})
	}

	total, err := repo.Count(ctx, filter...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to count conversations", err)
	}

	conversations, err := repo.FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to list conversations", err)
	}

	responses := make([]*dto.ShowConversationResponse, len(conversations))
	for i, c := range conversations {
		responses[i] = toConversationResponse(c)
	}
	return responses, total, nil
}

// nextAttemptCount tracks how many times a conversation has come back, via an
// atomic Redis counter. Redis being down degrades to attempt 1 instead of
// failing the query.
func (s *supportService) nextAttemptCount(ctx context.Context, conversationId uuid.UUID) int {
	if s.rdb == nil {
		return 1
	}
	key := fmt.Sprintf("support:attempts:%s", conversationId)
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		s.logger.Warn("SupportService", "Attempt counter unavailable", map[string]interface{}{"error": err.Error()})
		return 1
	}
	if count == 1 {
		s.rdb.Expire(ctx, key, attemptCounterTTL)
	}
	return int(count)
}

// resolveHistory prefers history supplied by the caller, falling back to the
// in-memory store for follow-ups within the same conversation.
func (s *supportService) resolveHistory(conversationId string, supplied []dto.HistoryTurn) []llm.Message {
	if len(supplied) > 0 {
		history := make([]llm.Message, len(supplied))
		for i, turn := range supplied {
			history[i] = llm.Message{Role: turn.Role, Content: turn.Content}
		}
		return history
	}
	return s.history.Get(conversationId)
}

func (s *supportService) publishOutcome(ctx context.Context, c *entity.Conversation) {
	base := map[string]interface{}{
		"conversation_id": c.Id.String(),
		"user_id":         c.UserId,
		"category":        c.Category,
		"sentiment":       c.Sentiment,
		"priority_score":  c.PriorityScore,
	}

	if err := s.publisher.Publish(ctx, constant.EventQueryCreated, base); err != nil {
		s.logger.Warn("SupportService", "Failed to publish query.created", map[string]interface{}{"error": err.Error()})
	}

	outcome := constant.EventQueryResolved
	if c.Escalated {
		outcome = constant.EventQueryEscalated
		base = map[string]interface{}{
			"conversation_id":   c.Id.String(),
			"user_id":           c.UserId,
			"category":          c.Category,
			"sentiment":         c.Sentiment,
			"priority_score":    c.PriorityScore,
			"escalation_reason": c.EscalationReason,
		}
	}
	if err := s.publisher.Publish(ctx, outcome, base); err != nil {
		s.logger.Warn("SupportService", "Failed to publish outcome event", map[string]interface{}{
			"event": outcome,
			"error": err.Error(),
		})
	}
}

func (s *supportService) alertEscalation(c *entity.Conversation) {
	if s.emailService == nil || s.escalationEmail == "" {
		return
	}
	// Off the request path: a slow SMTP server must not delay the response.
	go func() {
		if err := s.emailService.SendEscalationAlert(s.escalationEmail, c.Id.String(), c.EscalationReason, c.Query); err != nil {
			s.logger.Warn("SupportService", "Failed to send escalation alert", map[string]interface{}{
				"conversation_id": c.Id.String(),
				"error":           err.Error(),
			})
		}
	}()
}

func toKnowledgeSnippets(snippets []workflow.Snippet) []dto.KnowledgeSnippet {
	if len(snippets) == 0 {
		return nil
	}
	out := make([]dto.KnowledgeSnippet, len(snippets))
	for i, s := range snippets {
		out[i] = dto.KnowledgeSnippet{
			Title:    s.Title,
			Content:  s.Content,
			Category: s.Category,
			Score:    s.Score,
		}
	}
	return out
}

func toConversationResponse(c *entity.Conversation) *dto.ShowConversationResponse {
	return &dto.ShowConversationResponse{
		Id:               c.Id,
		UserId:           c.UserId,
		Query:            c.Query,
		Category:         c.Category,
		Sentiment:        c.Sentiment,
		PriorityScore:    c.PriorityScore,
		Escalated:        c.Escalated,
		EscalationReason: c.EscalationReason,
		Response:         c.Response,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
