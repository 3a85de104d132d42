package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/praxis-coach/praxis/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// event-logging middleware (caller → retry → logging → base). eventRepo may
// be nil when no event log is wanted.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from the environment: an explicit
// PRAXIS_LLM_PROVIDER wins, otherwise the standard API key variables are
// probed in order. Returns an error when nothing is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	var cfg Config
	if os.Getenv("PRAXIS_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		var ok bool
		cfg, ok = Discover()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set PRAXIS_LLM_PROVIDER or an API key")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}
