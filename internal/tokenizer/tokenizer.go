// Package tokenizer estimates the token footprint of the generated summary so
// users know what pasting it into a model context will cost.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

type encodingCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter encodingCounter) Name() string {
	return counter.name
}

func (counter encodingCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, fmt.Errorf("nil tiktoken encoder")
	}
	tokenIDs := counter.encoding.Encode(input, nil, nil)
	return len(tokenIDs), nil
}

// NewCounter returns a Counter for the requested model along with the resolved
// model or encoding name. Unknown models fall back to the default encoding.
func NewCounter(modelName string) (Counter, string, error) {
	resolvedModel := strings.ToLower(strings.TrimSpace(modelName))
	if resolvedModel == "" {
		resolvedModel = defaultModel
	}
	encoding, encodingError := tiktoken.EncodingForModel(resolvedModel)
	if encodingError == nil && encoding != nil {
		return encodingCounter{encoding: encoding, name: resolvedModel}, resolvedModel, nil
	}
	fallbackEncoding, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return encodingCounter{encoding: fallbackEncoding, name: defaultEncodingName}, defaultEncodingName, nil
}
