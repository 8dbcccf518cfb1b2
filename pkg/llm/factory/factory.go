package factory

import (
	"fmt"

	"warehouse-chat-be/pkg/llm"
	"warehouse-chat-be/pkg/llm/ollama"
	"warehouse-chat-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, openAIBaseURL, openAIKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(openAIBaseURL, openAIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
