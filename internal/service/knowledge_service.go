package service

import (
	"context"

	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/repository/unitofwork"
	"hr-support-be/pkg/embedding"
	"hr-support-be/pkg/workflow"
)

type IKnowledgeService interface {
	workflow.KnowledgeRetriever
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

// Retrieve embeds the query and runs a cosine similarity search against the
// knowledge base. Errors surface to the caller; the pipeline treats them as
// "no knowledge available" rather than aborting.
func (s *knowledgeService) Retrieve(ctx context.Context, query string, k int, category string, minScore float64) ([]workflow.Snippet, error) {
	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		s.logger.Warn("KnowledgeService", "Failed to embed query", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KBArticleRepository().SearchSimilarWithScore(ctx, res.Embedding.Values, k, category, minScore)
	if err != nil {
		s.logger.Warn("KnowledgeService", "Similarity search failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	snippets := make([]workflow.Snippet, len(scored))
	for i, hit := range scored {
		snippets[i] = workflow.Snippet{
			Title:    hit.Article.Title,
			Content:  hit.Article.Content,
			Category: hit.Article.Category,
			Score:    hit.Similarity,
		}
	}
	return snippets, nil
}
