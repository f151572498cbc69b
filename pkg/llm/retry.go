package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerateWithRetry calls the provider with a capped number of attempts and a
// linearly increasing delay (1s, 2s, ...) between them. Context cancellation
// aborts the wait immediately.
func GenerateWithRetry(ctx context.Context, provider LLMProvider, prompt string, maxRetries int, options ...Option) (string, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		raw, err := provider.Generate(ctx, prompt, options...)
		if err == nil {
			return strings.TrimSpace(raw), nil
		}
		lastErr = err

		if attempt < maxRetries {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("llm invocation failed after %d attempts: %w", maxRetries, lastErr)
}
