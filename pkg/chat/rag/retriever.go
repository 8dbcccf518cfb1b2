package rag

import (
	"context"
	"strconv"
	"strings"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/pkg/chat/normalizer"
	"warehouse-chat-be/pkg/embedding"
)

// Context is the assembled retrieval result handed to the answer prompt.
// Found is false when nothing matched, letting the caller short-circuit
// before spending an LLM call.
type Context struct {
	Passages []string
	Filter   map[string]interface{}
	Found    bool
}

// Joined renders the passages with the delimiter the ingestion side also
// documents, so prompts stay visually consistent with the stored chunks.
func (c *Context) Joined() string {
	return strings.Join(c.Passages, constant.RagPassageDelimiter)
}

// Retriever embeds the question and runs a filtered top-k similarity search
// against the document_embeddings collection.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	docRepo           contract.DocumentEmbeddingRepository
	topK              int
	logger            logger.ILogger
}

func NewRetriever(provider embedding.EmbeddingProvider, docRepo contract.DocumentEmbeddingRepository, topK int, log logger.ILogger) *Retriever {
	if topK <= 0 {
		topK = constant.RagDefaultTopK
	}
	return &Retriever{
		embeddingProvider: provider,
		docRepo:           docRepo,
		topK:              topK,
		logger:            log,
	}
}

// Retrieve runs the search. filter may be nil for open retrieval.
func (r *Retriever) Retrieve(ctx context.Context, query string, filter map[string]interface{}) (*Context, error) {
	vector, err := r.embeddingProvider.Generate(ctx, query)
	if err != nil {
		r.logger.Error("rag_retriever", "query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	docs, err := r.docRepo.SearchSimilar(ctx, vector, r.topK, filter)
	if err != nil {
		r.logger.Error("rag_retriever", "similarity search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	passages := make([]string, 0, len(docs))
	for _, doc := range docs {
		passages = append(passages, doc.Document)
	}
	return &Context{
		Passages: passages,
		Filter:   filter,
		Found:    len(passages) > 0,
	}, nil
}

// BuildFilter derives the metadata predicates for scoped retrieval from what
// the normalizer extracted. A message with no extracted scope yields nil,
// which searches the whole collection.
func BuildFilter(msg *normalizer.NormalizedMessage) map[string]interface{} {
	filter := make(map[string]interface{})
	if msg.Table != "" {
		filter["source_table"] = msg.Table
	}
	if msg.Warehouse != "" {
		filter["warehouse"] = msg.Warehouse
	}
	if msg.Week > 0 {
		filter["week"] = strconv.Itoa(msg.Week)
	}
	if msg.Year > 0 {
		filter["year"] = strconv.Itoa(msg.Year)
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}
