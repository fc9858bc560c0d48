// Package anthropic implements the live LLM gateway on the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/astrasemi/fabassist/internal/config"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Gateway implements models.Completer against the Anthropic API. One API
// call per Complete; no retries, no caching.
type Gateway struct {
	client anthropic.Client
	model  string
}

func NewGateway(cfg config.AIConfig) *Gateway {
	return &Gateway{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
	}
}

func (g *Gateway) Name() string { return "anthropic" }

// Complete sends one prompt and returns the first text block of the reply.
// All failures come back as typed models errors; nothing raw escapes.
func (g *Gateway) Complete(ctx context.Context, req models.PromptRequest) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(req.User)}
	if req.Image != nil {
		blocks = append(blocks, anthropic.NewImageBlockBase64(req.Image.MediaType, req.Image.Base64Data))
	}

	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", models.ErrInferenceTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", models.ErrProviderUnavailable, err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: no text content in reply", models.ErrInvalidResponse)
}

var _ models.Completer = (*Gateway)(nil)
