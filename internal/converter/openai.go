package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIConverter calls an OpenAI-compatible chat completion endpoint to
// perform the translation.
type OpenAIConverter struct {
	client openai.Client
	model  string
}

type openAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY,required"`
	BaseURL string `env:"OPENAI_BASE_URL"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4-turbo"`
}

// NewOpenAIConverter creates an OpenAIConverter from OPENAI_* environment
// variables.
func NewOpenAIConverter() (*OpenAIConverter, error) {
	cfg, err := env.ParseAs[openAIConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIConverter{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (c *OpenAIConverter) Convert(ctx context.Context, legacyCode, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Convert the following %s code to %s.\n"+
			"Preserve all logic and structure.\n"+
			"Return only the converted code without explanations.\n\n%s",
		sourceLang, targetLang, legacyCode,
	)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a code conversion assistant."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("conversion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("conversion returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
