package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeClient returns a fixed response or error.
type fakeClient struct {
	text  string
	err   error
	calls int
}

func (f *fakeClient) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeClient) Close() error { return nil }

func newTestGenerator(primary, secondary Client, primaryErr, secondaryErr error) *Generator {
	g := NewGenerator(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.newPrimary = func(_, _ string) (Client, error) {
		if primaryErr != nil {
			return nil, primaryErr
		}
		return primary, nil
	}
	g.newSecondary = func(_ context.Context, _, _ string) (Client, error) {
		if secondaryErr != nil {
			return nil, secondaryErr
		}
		return secondary, nil
	}
	return g
}

func TestGenerate_PrimarySucceeds(t *testing.T) {
	primary := &fakeClient{text: "generated cv"}
	secondary := &fakeClient{text: "should not be used"}
	g := newTestGenerator(primary, secondary, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{})

	if out.Failed() {
		t.Fatal("unexpected failure")
	}
	if out.Text != "generated cv" {
		t.Errorf("Text = %q", out.Text)
	}
	if out.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai", out.Provider)
	}
	if secondary.calls != 0 {
		t.Error("secondary provider was called despite primary success")
	}
}

func TestGenerate_FallsBackToSecondary(t *testing.T) {
	primary := &fakeClient{err: fmt.Errorf("quota exceeded")}
	secondary := &fakeClient{text: "fallback cv"}
	g := newTestGenerator(primary, secondary, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{})

	if out.Failed() {
		t.Fatal("unexpected failure")
	}
	if out.Text != "fallback cv" {
		t.Errorf("Text = %q", out.Text)
	}
	if out.Provider != ProviderGemini {
		t.Errorf("Provider = %q, want gemini", out.Provider)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls = %d/%d, want one attempt per provider", primary.calls, secondary.calls)
	}
}

func TestGenerate_BothFail_ReturnsDiagnosticText(t *testing.T) {
	primary := &fakeClient{err: fmt.Errorf("no key")}
	secondary := &fakeClient{err: fmt.Errorf("network down")}
	g := newTestGenerator(primary, secondary, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{})

	if !out.Failed() {
		t.Fatal("expected failure")
	}
	if out.Text != FailureDiagnostic {
		t.Errorf("Text = %q, want the fixed diagnostic", out.Text)
	}
}

func TestGenerate_MissingCredentials_ReturnsDiagnosticText(t *testing.T) {
	// Client construction itself fails when keys are absent.
	g := newTestGenerator(nil, nil,
		fmt.Errorf("OpenAI API key is required"),
		fmt.Errorf("Gemini API key is required"))

	out := g.Generate(context.Background(), "prompt", Options{})

	if !out.Failed() || out.Text != FailureDiagnostic {
		t.Errorf("want diagnostic on missing credentials, got %+v", out)
	}
}

func TestGenerate_ExplicitProviderDoesNotFallBack(t *testing.T) {
	primary := &fakeClient{err: fmt.Errorf("boom")}
	secondary := &fakeClient{text: "fallback cv"}
	g := newTestGenerator(primary, secondary, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{Provider: ProviderOpenAI})

	if !out.Failed() {
		t.Fatal("expected failure with explicit primary selection")
	}
	if secondary.calls != 0 {
		t.Error("secondary was attempted despite explicit primary selection")
	}
}

func TestGenerate_SentinelReplyTaggedInsufficientData(t *testing.T) {
	primary := &fakeClient{text: "ERROR_DATOS_INSUFICIENTES: el CV base no contiene experiencia verificable."}
	g := newTestGenerator(primary, &fakeClient{}, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{})

	if out.Kind != KindInsufficientData {
		t.Fatalf("Kind = %v, want KindInsufficientData", out.Kind)
	}
	if out.Failed() {
		t.Error("a sentinel reply is a refusal, not a provider failure")
	}
}

func TestGenerate_SuccessTaggedGenerated(t *testing.T) {
	primary := &fakeClient{text: "contenido generado"}
	g := newTestGenerator(primary, &fakeClient{}, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{})

	if out.Kind != KindGenerated {
		t.Fatalf("Kind = %v, want KindGenerated", out.Kind)
	}
}

func TestGenerate_ConcurrentCallsShareOneClient(t *testing.T) {
	var constructions, generates atomic.Int64
	g := NewGenerator(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.newPrimary = func(_, _ string) (Client, error) {
		constructions.Add(1)
		return clientFunc(func(context.Context, string) (string, error) {
			generates.Add(1)
			return "ok", nil
		}), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if out := g.Generate(context.Background(), "prompt", Options{}); out.Failed() {
				t.Error("unexpected failure")
			}
		}()
	}
	wg.Wait()

	if got := constructions.Load(); got != 1 {
		t.Errorf("client constructed %d times, want 1", got)
	}
	if got := generates.Load(); got != 8 {
		t.Errorf("Generate forwarded %d times, want 8", got)
	}
}

func TestGenerate_CachedSecondaryIgnoresCallContext(t *testing.T) {
	var gotCtx context.Context
	g := newTestGenerator(&fakeClient{err: fmt.Errorf("down")}, &fakeClient{text: "ok"}, nil, nil)
	inner := g.newSecondary
	g.newSecondary = func(ctx context.Context, apiKey, model string) (Client, error) {
		gotCtx = ctx
		return inner(ctx, apiKey, model)
	}

	callCtx, cancel := context.WithCancel(context.Background())
	out := g.Generate(callCtx, "prompt", Options{})
	cancel()

	if out.Failed() {
		t.Fatal("unexpected failure")
	}
	if gotCtx != context.Background() {
		t.Error("cached secondary client was built from the request context")
	}
	if err := gotCtx.Err(); err != nil {
		t.Errorf("construction context errored: %v", err)
	}
}

// clientFunc adapts a function to the Client interface for concurrency tests.
type clientFunc func(ctx context.Context, prompt string) (string, error)

func (f clientFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func (f clientFunc) Close() error { return nil }

func TestGenerate_ExplicitSecondary(t *testing.T) {
	primary := &fakeClient{text: "primary"}
	secondary := &fakeClient{text: "secondary"}
	g := newTestGenerator(primary, secondary, nil, nil)

	out := g.Generate(context.Background(), "prompt", Options{Provider: ProviderGemini})

	if out.Text != "secondary" {
		t.Errorf("Text = %q", out.Text)
	}
	if primary.calls != 0 {
		t.Error("primary was attempted despite explicit secondary selection")
	}
}
