package service

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/dto"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/pkg/chat/intent"
	"warehouse-chat-be/pkg/chat/normalizer"
	"warehouse-chat-be/pkg/chat/prompt"
	"warehouse-chat-be/pkg/chat/rag"
	"warehouse-chat-be/pkg/chat/response"
	"warehouse-chat-be/pkg/chat/sqlgen"
	"warehouse-chat-be/pkg/chat/structured"
)

// IChatService defines the chat service interface
type IChatService interface {
	// ProcessMessage answers a free-text question. It never returns an error:
	// every failure becomes user-facing text.
	ProcessMessage(ctx context.Context, userId string, request *dto.ChatRequest) *dto.ChatResponse
}

// chatService coordinates the normalize -> classify -> execute pipeline
type chatService struct {
	structuredExecutor *structured.Executor
	sqlSynthesizer     *sqlgen.Synthesizer
	retriever          *rag.Retriever
	responseGenerator  *response.Generator
	llmLogger          *log.Logger
	logger             logger.ILogger
}

func NewChatService(
	structuredExecutor *structured.Executor,
	sqlSynthesizer *sqlgen.Synthesizer,
	retriever *rag.Retriever,
	responseGenerator *response.Generator,
	log logger.ILogger,
) IChatService {
	return &chatService{
		structuredExecutor: structuredExecutor,
		sqlSynthesizer:     sqlSynthesizer,
		retriever:          retriever,
		responseGenerator:  responseGenerator,
		llmLogger:          initLLMLogger(),
		logger:             log,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-PIPELINE] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (cs *chatService) ProcessMessage(ctx context.Context, userId string, request *dto.ChatRequest) (resp *dto.ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			cs.logger.Error("chat_service", "panic while processing message", map[string]interface{}{
				"userId": userId,
				"panic":  r,
			})
			resp = &dto.ChatResponse{Text: constant.MsgGenericApology}
		}
	}()

	msg := normalizer.Normalize(request.Text)
	it := intent.Classify(msg)

	cs.llmLogger.Printf("[ROUTE] user=%s intent=%s table=%q question=%q", userId, it.Kind, it.TableFilter, msg.Text)

	switch it.Kind {
	case intent.KindEntityLookup, intent.KindOrderStatusCount, intent.KindCustomerInfo,
		intent.KindReport, intent.KindSchemaInfo:
		result := cs.structuredExecutor.Execute(ctx, it, msg)
		return &dto.ChatResponse{Text: result.Text, StructuredData: result.Rows}

	case intent.KindTextToSQL:
		result := cs.sqlSynthesizer.Answer(ctx, msg.Text, it.TableFilter)
		return &dto.ChatResponse{Text: result.Text, StructuredData: result.Rows}

	case intent.KindScopedRetrieval:
		return cs.answerFromDocuments(ctx, msg, rag.BuildFilter(msg), it.TableFilter)

	default:
		return cs.answerFromDocuments(ctx, msg, nil, "")
	}
}

// answerFromDocuments runs the retrieval branch. When nothing matches, the
// fixed no-data reply goes out without spending an LLM call.
func (cs *chatService) answerFromDocuments(ctx context.Context, msg *normalizer.NormalizedMessage, filter map[string]interface{}, tableScope string) *dto.ChatResponse {
	ragCtx, err := cs.retriever.Retrieve(ctx, msg.Text, filter)
	if err != nil {
		return &dto.ChatResponse{Text: constant.MsgGenericApology}
	}
	if !ragCtx.Found {
		cs.llmLogger.Printf("[RAG] no passages found filter=%v", filter)
		return &dto.ChatResponse{Text: constant.MsgNoRelevantInformation}
	}

	cs.llmLogger.Printf("[RAG] %d passages retrieved filter=%v", len(ragCtx.Passages), filter)
	answer := cs.responseGenerator.Generate(ctx, prompt.BuildRAGPrompt(msg.Text, ragCtx.Joined(), tableScope))
	return &dto.ChatResponse{Text: answer}
}
