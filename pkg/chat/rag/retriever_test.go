package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/pkg/chat/normalizer"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	return s.vector, s.err
}

type stubDocRepo struct {
	docs       []*contract.ScoredDocument
	err        error
	lastLimit  int
	lastFilter map[string]interface{}
}

func (s *stubDocRepo) Create(ctx context.Context, doc *model.DocumentEmbedding) error { return nil }
func (s *stubDocRepo) CreateBulk(ctx context.Context, docs []*model.DocumentEmbedding) error {
	return nil
}
func (s *stubDocRepo) Count(ctx context.Context) (int64, error) { return int64(len(s.docs)), nil }

func (s *stubDocRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int, filter map[string]interface{}) ([]*contract.ScoredDocument, error) {
	s.lastLimit = limit
	s.lastFilter = filter
	return s.docs, s.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestRetrieveFound(t *testing.T) {
	repo := &stubDocRepo{docs: []*contract.ScoredDocument{
		{Document: "passage one", Similarity: 0.91},
		{Document: "passage two", Similarity: 0.85},
	}}
	r := NewRetriever(&stubEmbedder{vector: []float32{0.1, 0.2}}, repo, 3, noopLogger{})

	ctx, err := r.Retrieve(context.Background(), "pregunta", map[string]interface{}{"source_table": constant.TableTestData})
	assert.NoError(t, err)
	assert.True(t, ctx.Found)
	assert.Equal(t, 3, repo.lastLimit)
	assert.Equal(t, constant.TableTestData, repo.lastFilter["source_table"])
	assert.Equal(t, "passage one"+constant.RagPassageDelimiter+"passage two", ctx.Joined())
}

func TestRetrieveNothingFound(t *testing.T) {
	r := NewRetriever(&stubEmbedder{vector: []float32{0.1}}, &stubDocRepo{}, 3, noopLogger{})

	ctx, err := r.Retrieve(context.Background(), "pregunta", nil)
	assert.NoError(t, err)
	assert.False(t, ctx.Found)
	assert.Empty(t, ctx.Passages)
}

func TestRetrieveEmbeddingError(t *testing.T) {
	r := NewRetriever(&stubEmbedder{err: errors.New("api down")}, &stubDocRepo{}, 3, noopLogger{})

	_, err := r.Retrieve(context.Background(), "pregunta", nil)
	assert.Error(t, err)
}

func TestTopKDefault(t *testing.T) {
	repo := &stubDocRepo{}
	r := NewRetriever(&stubEmbedder{vector: []float32{0.1}}, repo, 0, noopLogger{})

	_, _ = r.Retrieve(context.Background(), "pregunta", nil)
	assert.Equal(t, constant.RagDefaultTopK, repo.lastLimit)
}

func TestBuildFilter(t *testing.T) {
	msg := normalizer.Normalize("busca en testdata la semana 12 de 2024 del warehouse de boca")
	filter := BuildFilter(msg)

	assert.Equal(t, constant.TableTestData, filter["source_table"])
	assert.Equal(t, constant.WarehouseBocaRaton, filter["warehouse"])
	assert.Equal(t, "12", filter["week"])
	assert.Equal(t, "2024", filter["year"])
}

func TestBuildFilterEmpty(t *testing.T) {
	msg := normalizer.Normalize("pregunta libre sin filtros")
	assert.Nil(t, BuildFilter(msg))
}
