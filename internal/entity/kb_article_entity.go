package entity

import (
	"time"

	"github.com/google/uuid"
)

// KBArticle is one knowledge base document with its embedding.
type KBArticle struct {
	Id             uuid.UUID
	Title          string
	Content        string
	Category       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
