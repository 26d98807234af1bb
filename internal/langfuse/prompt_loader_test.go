package langfuse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	var gotPath, gotLabel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLabel = r.URL.Query().Get("label")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"sleep-insights-system","version":3,"type":"text","prompt":"Be brief."}`))
	}))
	defer server.Close()

	cfg := PromptLoaderConfig{
		BaseURL:     server.URL + "/",
		PublicKey:   "pk",
		SecretKey:   "sk",
		PromptName:  "sleep-insights-system",
		PromptLabel: "production",
		SavePath:    filepath.Join(t.TempDir(), "prompts", "sleep-insights-system.json"),
	}

	prompt, err := LoadPrompt(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt.Text != "Be brief." || prompt.Version != 3 || prompt.Cached {
		t.Errorf("unexpected prompt %+v", prompt)
	}
	if gotPath != "/api/public/v2/prompts/sleep-insights-system" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotLabel != "production" {
		t.Errorf("unexpected label %s", gotLabel)
	}

	cached, err := readCache(cfg.SavePath)
	if err != nil {
		t.Fatalf("expected cached prompt: %v", err)
	}
	if cached.Text != "Be brief." || cached.Version != 3 || cached.Label != "production" || !cached.Cached {
		t.Errorf("unexpected cached prompt %+v", cached)
	}
}

func TestLoadPrompt_ChatPromptIsFlattened(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"chat","prompt":[
			{"role":"system","content":"You help with sleep."},
			{"type":"placeholder","name":"history"},
			{"role":"user","content":""}
		]}`))
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-insights-system",
	}, zap.NewNop())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SYSTEM: You help with sleep.\n\nMESSAGE: {{history}}"
	if prompt.Text != want {
		t.Errorf("expected %q, got %q", want, prompt.Text)
	}
	if prompt.Name != "sleep-insights-system" {
		t.Errorf("expected configured name, got %q", prompt.Name)
	}
}

func TestLoadPrompt_FallsBackToCache(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"empty prompt", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"type":"text","prompt":"  "}`)) }},
		{"unsupported type", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"type":"image","prompt":"x"}`)) }},
	}

	cache := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(cache, []byte("cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
				BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk", PromptName: "p", SavePath: cache,
			}, zap.NewNop())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prompt.Text != "cached prompt" || !prompt.Cached {
				t.Errorf("unexpected prompt %+v", prompt)
			}
		})
	}
}

func TestLoadPrompt_DisabledUsesCache(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "prompt.json")
	if err := writeCache(cache, Prompt{Name: "p", Version: 2, Text: "from cache"}); err != nil {
		t.Fatal(err)
	}

	for _, cfg := range []PromptLoaderConfig{
		{PromptName: "p", SavePath: cache},
		{SavePath: cache},
	} {
		prompt, err := LoadPrompt(context.Background(), cfg, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prompt.Text != "from cache" || prompt.Version != 2 || prompt.Name != "p" {
			t.Errorf("unexpected prompt %+v", prompt)
		}
	}
}

func TestLoadPrompt_NoSourceAvailable(t *testing.T) {
	_, err := LoadPrompt(context.Background(), PromptLoaderConfig{PromptName: "p"}, zap.NewNop())
	if !errors.Is(err, ErrNoPrompt) {
		t.Errorf("expected ErrNoPrompt, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = LoadPrompt(context.Background(), PromptLoaderConfig{SavePath: empty}, zap.NewNop())
	if !errors.Is(err, ErrNoPrompt) {
		t.Errorf("expected ErrNoPrompt for empty cache, got %v", err)
	}
}
