package implementation

import (
	"context"
	"fmt"

	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentEmbeddingRepository(db *gorm.DB) contract.DocumentEmbeddingRepository {
	return &DocumentEmbeddingRepositoryImpl{db: db}
}

func (r *DocumentEmbeddingRepositoryImpl) Create(ctx context.Context, doc *model.DocumentEmbedding) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, docs []*model.DocumentEmbedding) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(docs, 100).Error
}

func (r *DocumentEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DocumentEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilar runs a pgvector cosine search. Cosine distance in pgvector is
// 1 - cosine_similarity, so similarity = 1 - (embedding_value <=> query).
// Metadata filters use the JSONB ->> operator as text equality.
func (r *DocumentEmbeddingRepositoryImpl) SearchSimilar(
	ctx context.Context,
	embedding []float32,
	limit int,
	filter map[string]interface{},
) ([]*contract.ScoredDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		Document   string
		Metadata   datatypes.JSONMap
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document, metadata, 1 - (embedding_value <=> ?) as similarity", queryVector)

	for key, value := range filter {
		query = query.Where("metadata ->> ? = ?", key, fmt.Sprint(value))
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*contract.ScoredDocument, len(results))
	for i, res := range results {
		docs[i] = &contract.ScoredDocument{
			Document:   res.Document,
			Metadata:   res.Metadata,
			Similarity: res.Similarity,
		}
	}
	return docs, nil
}
