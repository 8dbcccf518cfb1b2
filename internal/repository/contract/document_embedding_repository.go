package contract

import (
	"context"

	"warehouse-chat-be/internal/model"
)

// ScoredDocument wraps a retrieved passage with its cosine similarity
type ScoredDocument struct {
	Document   string
	Metadata   map[string]interface{}
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentEmbeddingRepository interface {
	Create(ctx context.Context, doc *model.DocumentEmbedding) error
	CreateBulk(ctx context.Context, docs []*model.DocumentEmbedding) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilar runs a top-k cosine search. filter entries are matched as
	// metadata equality predicates, combined with AND. A nil filter searches
	// the whole collection.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, filter map[string]interface{}) ([]*ScoredDocument, error)
}
