package response

import (
	"context"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/pkg/llm"
)

// Generator is the single choke point through which every LLM-produced reply
// passes. A provider failure never reaches the caller as an error: the user
// always gets a readable sentence.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{llmProvider: provider, logger: log}
}

// Generate runs the prompt and returns the model text, or the generic apology
// when the provider fails. No retries: a second call against a broken
// provider just doubles the latency of the same apology.
func (g *Generator) Generate(ctx context.Context, prompt string, opts ...llm.Option) string {
	answer, err := g.llmProvider.Generate(ctx, prompt, opts...)
	if err != nil {
		g.logger.Error("response_generator", "llm generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.MsgGenericApology
	}
	return answer
}
