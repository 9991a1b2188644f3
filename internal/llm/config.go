// Package llm provides the text-generation clients and the primary/fallback
// orchestration used to produce every AI artifact.
package llm

// Provider identifies a text-generation provider.
type Provider string

const (
	// ProviderAuto tries the primary provider and falls back to the secondary.
	ProviderAuto Provider = "auto"
	// ProviderOpenAI is the primary provider.
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the secondary (fallback) provider.
	ProviderGemini Provider = "gemini"
)

// Generation parameters shared by both providers. Temperature is pinned low
// so repeated generations over the same CV stay close to deterministic.
const (
	temperature     = 0.1
	topP            = 1
	maxOutputTokens = 7000
)

// systemInstruction is sent with every request. OpenAI receives it on the
// system role; Gemini receives it as the model's system instruction.
const systemInstruction = "Eres un asistente experto en redacción profesional. " +
	"Debes seguir EXACTAMENTE las instrucciones del usuario. " +
	"No debes inventar datos, habilidades, experiencia, logros " +
	"ni información no presente en el prompt. " +
	"Mantén un tono profesional, claro y preciso."

// Config holds provider credentials and model selection. Keys are consulted
// lazily on first use; a missing key simply disables that provider.
type Config struct {
	OpenAIAPIKey string
	GeminiAPIKey string
	OpenAIModel  string
	GeminiModel  string
}

// DefaultOpenAIModel and DefaultGeminiModel are used when the config does
// not pin explicit model names.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-flash-latest"
)

// withDefaults returns a copy of the config with empty model names filled in.
func (c Config) withDefaults() Config {
	if c.OpenAIModel == "" {
		c.OpenAIModel = DefaultOpenAIModel
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
	return c
}
