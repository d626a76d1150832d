package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
	"github.com/shopzo-app/shopzo-backend/pkg/openai"
)

const systemPrompt = "You are a helpful shopping assistant. Answer questions " +
	"about products briefly and honestly, and say so when you do not know."

// Service answers shopping questions through the configured completion backend.
type Service interface {
	Ask(ctx context.Context, input AskInput) (*AskResult, error)
}

// AskInput carries a user prompt, optionally scoped to a product.
type AskInput struct {
	Prompt    string
	ProductID *uuid.UUID
}

// AskResult holds the assistant reply.
type AskResult struct {
	Reply string `json:"reply"`
}

type completer interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

type service struct {
	completions completer
}

// NewService constructs a chat service backed by the provided completion client.
func NewService(completions completer) (Service, error) {
	if completions == nil {
		return nil, fmt.Errorf("completion client is required")
	}
	return &service{completions: completions}, nil
}

func (s *service) Ask(ctx context.Context, input AskInput) (*AskResult, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}

	// Scope the question to a product when the caller supplies one.
	if input.ProductID != nil && *input.ProductID != uuid.Nil {
		prompt = fmt.Sprintf("The product id is %s, %s", input.ProductID, prompt)
	}

	reply, err := s.completions.Complete(ctx, []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "chat completion")
	}

	return &AskResult{Reply: reply}, nil
}
