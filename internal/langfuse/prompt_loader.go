package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const promptFetchTimeout = 5 * time.Second

// PromptLoaderConfig describes where the insights system prompt comes from.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	// SavePath is the local cache file. Empty disables caching.
	SavePath string
}

func (c PromptLoaderConfig) remote() bool {
	return c.PromptName != "" && c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// Prompt is a managed prompt version.
type Prompt struct {
	Name    string `json:"name"`
	Label   string `json:"label,omitempty"`
	Version int    `json:"version,omitempty"`
	Text    string `json:"text"`
	// Cached is set when the prompt was read from the local cache.
	Cached bool `json:"-"`
}

// ErrNoPrompt is returned when neither Langfuse nor the cache has a prompt.
var ErrNoPrompt = errors.New("no prompt available")

// LoadPrompt fetches the prompt from Langfuse and refreshes the local cache.
// When Langfuse is not configured or the fetch fails the cached copy is used.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig, log *zap.Logger) (Prompt, error) {
	log = log.Named("langfuse").With(zap.String("prompt", cfg.PromptName))

	if cfg.remote() {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := writeCache(cfg.SavePath, prompt); err != nil {
				log.Warn("failed to cache prompt locally", zap.Error(err))
			}
			log.Info("prompt loaded", zap.String("label", prompt.Label), zap.Int("version", prompt.Version))
			return prompt, nil
		}
		log.Warn("prompt fetch failed, using cached copy", zap.Error(err))
	}

	prompt, err := readCache(cfg.SavePath)
	if err != nil {
		return Prompt{}, err
	}
	if prompt.Name == "" {
		prompt.Name = cfg.PromptName
	}
	return prompt, nil
}

func promptURL(cfg PromptLoaderConfig) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		u.RawQuery = url.Values{"label": {cfg.PromptLabel}}.Encode()
	}
	return u.String(), nil
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	target, err := promptURL(cfg)
	if err != nil {
		return Prompt{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, promptFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Name    string          `json:"name"`
		Version int             `json:"version"`
		Labels  []string        `json:"labels"`
		Type    string          `json:"type"`
		Prompt  json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Prompt{}, fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	text, err := promptText(payload.Type, payload.Prompt)
	if err != nil {
		return Prompt{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Prompt{}, fmt.Errorf("prompt %q is empty", cfg.PromptName)
	}

	name := payload.Name
	if name == "" {
		name = cfg.PromptName
	}
	return Prompt{Name: name, Label: cfg.PromptLabel, Version: payload.Version, Text: text}, nil
}

// promptText returns a text prompt as is and flattens chat prompts into
// "ROLE: content" blocks.
func promptText(kind string, raw json.RawMessage) (string, error) {
	switch kind {
	case "", "text":
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(raw, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(messages), nil
	}
	return "", fmt.Errorf("unsupported prompt type %q", kind)
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func flattenChatMessages(messages []chatPromptMessage) string {
	blocks := make([]string, 0, len(messages))
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			content = ""
			if msg.Name != "" {
				content = "{{" + msg.Name + "}}"
			}
		}
		if content == "" {
			continue
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		blocks = append(blocks, strings.ToUpper(role)+": "+content)
	}
	return strings.Join(blocks, "\n\n")
}

// readCache accepts both the JSON cache format and a plain text file, so a
// hand-written prompt can be dropped in place.
func readCache(path string) (Prompt, error) {
	if path == "" {
		return Prompt{}, fmt.Errorf("%w: no local prompt file configured", ErrNoPrompt)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Prompt{}, fmt.Errorf("%w: read local prompt file: %v", ErrNoPrompt, err)
	}

	var prompt Prompt
	if err := json.Unmarshal(data, &prompt); err != nil || prompt.Text == "" {
		prompt = Prompt{Text: string(data)}
	}
	if strings.TrimSpace(prompt.Text) == "" {
		return Prompt{}, fmt.Errorf("%w: local prompt file is empty", ErrNoPrompt)
	}
	prompt.Cached = true
	return prompt, nil
}

func writeCache(path string, prompt Prompt) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
