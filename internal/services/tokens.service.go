package services

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	Count(content string) int
}

// WhitespaceCounter counts tokens as maximal runs of non-whitespace
// characters. It is the default weight metric for tree nodes.
type WhitespaceCounter struct{}

func (WhitespaceCounter) Name() string { return "whitespace" }

func (WhitespaceCounter) Count(content string) int {
	return len(strings.Fields(content))
}

// openAICounter estimates tokens with a tiktoken encoding.
type openAICounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (c openAICounter) Name() string { return c.name }

func (c openAICounter) Count(content string) int {
	return len(c.encoding.Encode(content, nil, nil))
}

var activeCounter Counter

// InitCounter resolves and stores the shared counter for the configured
// model.
func InitCounter(model string) (Counter, error) {
	counter, err := NewCounter(model)
	if err != nil {
		return nil, err
	}
	activeCounter = counter
	return counter, nil
}

// GetCounter returns the shared counter, defaulting to whitespace
// counting when none was initialized.
func GetCounter() Counter {
	if activeCounter == nil {
		return WhitespaceCounter{}
	}
	return activeCounter
}

// NewCounter returns the counter for the configured model. The literal
// "whitespace" (or an empty string) selects whitespace counting; anything
// else is resolved as an OpenAI model name through tiktoken.
func NewCounter(model string) (Counter, error) {
	model = strings.TrimSpace(strings.ToLower(model))
	if model == "" || model == "whitespace" {
		return WhitespaceCounter{}, nil
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("resolve tokenizer for model %q: %w", model, err)
	}
	return openAICounter{encoding: encoding, name: model}, nil
}
