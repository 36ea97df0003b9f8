// Package translate provides a best-effort text-to-text translation client
// with a per-unit fallback contract: a paragraph that fails to translate is
// replaced by its original text, never dropped, and a failure never aborts
// the surrounding document.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"

	"github.com/hyperifyio/gopromo/internal/cache"
)

// Translator turns text in an auto-detected source language into the target
// language given as a BCP 47 tag.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// ParseTarget validates a target language tag and returns its canonical
// string form. Unknown tags fail here, at configuration time, rather than
// once per paragraph.
func ParseTarget(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("parse target language %q: %w", tag, err)
	}
	return t.String(), nil
}

// Service translates through an OpenAI-compatible chat endpoint, one
// paragraph per call, with an optional file cache in front.
type Service struct {
	Client *openai.Client
	Model  string
	Cache  *cache.TranslationCache
}

func (s *Service) Translate(ctx context.Context, text, target string) (string, error) {
	if s == nil || s.Client == nil {
		return "", fmt.Errorf("translator not configured")
	}
	key := cache.KeyFrom(s.Model, target, text)
	if s.Cache != nil {
		if hit, ok := s.Cache.Get(ctx, key); ok {
			return hit, nil
		}
	}

	system := fmt.Sprintf("You are a translation engine. Translate the user's text from its source language into %s. Preserve formatting markers. Return only the translated text.", target)
	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
		N:           1,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		// One retry for transient failures; the caller's fallback contract
		// handles anything beyond that.
		resp, err = s.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("translation call (after retry): %w", err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translation returned no choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("translation returned empty text")
	}
	if s.Cache != nil {
		_ = s.Cache.Save(ctx, key, out)
	}
	return out, nil
}

// Document translates paragraphs one by one. Blank paragraphs are preserved
// as spacing without a service call; a failed paragraph keeps its original
// text. The result always has the same length and order as the input.
func Document(ctx context.Context, tr Translator, paragraphs []string, target string) []string {
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			out[i] = p
			continue
		}
		translated, err := tr.Translate(ctx, p, target)
		if err != nil {
			log.Warn().Err(err).Int("paragraph", i).Msg("translation failed; keeping original text")
			out[i] = p
			continue
		}
		out[i] = translated
	}
	return out
}
