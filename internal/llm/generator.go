package llm

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mvarela/cv-alchemist/internal/prompts"
)

// FailureDiagnostic is returned as ordinary text when both providers fail.
// The caller's contract is "always get displayable text back", so this is
// data, not an error.
const FailureDiagnostic = "⚠️ No se pudo generar contenido con ninguna API de IA.\n\n" +
	"El sistema intentó usar:\n" +
	"1. OpenAI (primaria)\n" +
	"2. Gemini (fallback)\n\n" +
	"Por favor verifica:\n" +
	"- Al menos una API key está configurada (OPENAI_API_KEY o GEMINI_API_KEY)\n" +
	"- Los modelos configurados son válidos\n" +
	"- Hay conexión a internet\n" +
	"- No se excedieron los límites de uso\n"

// Options selects a provider and optionally overrides the model name for a
// single call. The zero value means "auto with configured models".
type Options struct {
	Provider Provider
	Model    string
}

// Kind tags a generation result so callers never mistake a refusal or a
// diagnostic for CV content.
type Kind int

const (
	// KindGenerated means Text is usable generated content.
	KindGenerated Kind = iota
	// KindInsufficientData means the model declined because the source
	// material was too thin. Text carries the model's explanation.
	KindInsufficientData
	// KindFailed means every attempted provider failed and Text is the
	// fixed diagnostic.
	KindFailed
)

// Output is the result of a generation call. Text is always displayable:
// generated content on success, FailureDiagnostic when every attempted
// provider failed.
type Output struct {
	Text     string
	Provider Provider
	Kind     Kind
}

// Failed reports whether no provider produced a reply.
func (o Output) Failed() bool {
	return o.Kind == KindFailed
}

// Generator runs prompts against the primary provider with one automatic
// fallback to the secondary. Clients are constructed lazily on first use so
// missing credentials surface as the diagnostic text instead of a startup
// crash. One attempt per provider per call; no retries, no caching.
// Safe for concurrent use by multiple goroutines.
type Generator struct {
	config Config
	logger *slog.Logger

	mu        sync.Mutex // guards primary and secondary
	primary   Client
	secondary Client

	// factories are swappable for tests
	newPrimary   func(apiKey, model string) (Client, error)
	newSecondary func(ctx context.Context, apiKey, model string) (Client, error)
}

// NewGenerator creates a generator from provider configuration.
func NewGenerator(cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		config: cfg.withDefaults(),
		logger: logger,
		newPrimary: func(apiKey, model string) (Client, error) {
			return NewOpenAIClient(apiKey, model)
		},
		newSecondary: func(ctx context.Context, apiKey, model string) (Client, error) {
			return NewGeminiClient(ctx, apiKey, model)
		},
	}
}

// Generate sends the prompt to the selected provider(s) and always returns
// displayable text.
func (g *Generator) Generate(ctx context.Context, prompt string, opts Options) Output {
	provider := opts.Provider
	if provider == "" {
		provider = ProviderAuto
	}

	if provider == ProviderOpenAI || provider == ProviderAuto {
		text, err := g.generatePrimary(ctx, prompt, opts.Model)
		if err == nil {
			return classify(text, ProviderOpenAI)
		}
		g.logger.Warn("primary provider failed", "provider", ProviderOpenAI, "error", err)
		if provider == ProviderOpenAI {
			return Output{Text: FailureDiagnostic, Kind: KindFailed}
		}
	}

	text, err := g.generateSecondary(ctx, prompt, opts.Model)
	if err == nil {
		return classify(text, ProviderGemini)
	}
	g.logger.Warn("secondary provider failed", "provider", ProviderGemini, "error", err)

	return Output{Text: FailureDiagnostic, Kind: KindFailed}
}

// classify tags a successful reply: a reply opening with the refusal
// sentinel is insufficient-data, never CV content.
func classify(text string, provider Provider) Output {
	if strings.HasPrefix(strings.TrimSpace(text), prompts.SentinelInsufficientData) {
		return Output{Text: text, Provider: provider, Kind: KindInsufficientData}
	}
	return Output{Text: text, Provider: provider, Kind: KindGenerated}
}

func (g *Generator) generatePrimary(ctx context.Context, prompt, model string) (string, error) {
	if model != "" {
		client, err := g.newPrimary(g.config.OpenAIAPIKey, model)
		if err != nil {
			return "", err
		}
		return client.Generate(ctx, prompt)
	}

	client, err := g.primaryClient()
	if err != nil {
		return "", err
	}
	return client.Generate(ctx, prompt)
}

func (g *Generator) generateSecondary(ctx context.Context, prompt, model string) (string, error) {
	if model != "" {
		client, err := g.newSecondary(ctx, g.config.GeminiAPIKey, model)
		if err != nil {
			return "", err
		}
		defer func() { _ = client.Close() }()
		return client.Generate(ctx, prompt)
	}

	client, err := g.secondaryClient()
	if err != nil {
		return "", err
	}
	return client.Generate(ctx, prompt)
}

func (g *Generator) primaryClient() (Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.primary == nil {
		client, err := g.newPrimary(g.config.OpenAIAPIKey, g.config.OpenAIModel)
		if err != nil {
			return nil, err
		}
		g.primary = client
	}
	return g.primary, nil
}

// secondaryClient builds the cached Gemini client from a background context,
// not the calling request's: the client outlives the request, and a canceled
// construction context would poison its connection for every later call.
func (g *Generator) secondaryClient() (Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.secondary == nil {
		client, err := g.newSecondary(context.Background(), g.config.GeminiAPIKey, g.config.GeminiModel)
		if err != nil {
			return nil, err
		}
		g.secondary = client
	}
	return g.secondary, nil
}

// Close releases both provider clients.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var firstErr error
	if g.primary != nil {
		if err := g.primary.Close(); err != nil {
			firstErr = err
		}
	}
	if g.secondary != nil {
		if err := g.secondary.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
