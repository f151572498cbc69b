package service

import (
	"context"
	"time"

	"hr-support-be/internal/constant"
	"hr-support-be/internal/dto"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/pkg/serverutils"
	"hr-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.ConversationRepository().ExistsById(ctx, req.ConversationId)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to verify conversation", err)
	}
	if !exists {
		return nil, serverutils.NewNotFoundError("Conversation not found")
	}

	feedback := &entity.Feedback{
		Id:             uuid.New(),
		ConversationId: req.ConversationId,
		UserId:         req.UserId,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, serverutils.NewInternalError("Failed to store feedback", err)
	}

	if err := s.publisher.Publish(ctx, constant.EventFeedbackReceived, map[string]interface{}{
		"feedback_id":     feedback.Id.String(),
		"conversation_id": req.ConversationId.String(),
		"user_id":         req.UserId,
		"rating":          req.Rating,
	}); err != nil {
		s.logger.Warn("FeedbackService", "Failed to publish feedback.received", map[string]interface{}{"error": err.Error()})
	}

	return &dto.SubmitFeedbackResponse{Id: feedback.Id}, nil
}
