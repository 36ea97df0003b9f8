package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/gopromo/internal/cache"
	"github.com/hyperifyio/gopromo/internal/content"
	"github.com/hyperifyio/gopromo/internal/facts"
	"github.com/hyperifyio/gopromo/internal/markup"
	"github.com/hyperifyio/gopromo/internal/normalize"
	"github.com/hyperifyio/gopromo/internal/translate"
)

// App runs one brief-to-content pass: normalize, strip, extract, render,
// export, and optionally translate. The core pipeline is synchronous and
// request-scoped; only the translation step touches the network.
type App struct {
	cfg        Config
	translator translate.Translator
	target     string
}

func New(cfg Config) (*App, error) {
	a := &App{cfg: cfg}
	if cfg.TranslateLang == "" {
		return a, nil
	}

	target, err := translate.ParseTarget(cfg.TranslateLang)
	if err != nil {
		return nil, err
	}
	a.target = target

	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	svc := &translate.Service{
		Client: openai.NewClientWithConfig(transportCfg),
		Model:  cfg.LLMModel,
	}
	if cfg.CacheDir != "" {
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged stale translation cache entries")
			}
		}
		svc.Cache = &cache.TranslationCache{Dir: cfg.CacheDir}
	}
	a.translator = svc
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	// 1) Read the brief and normalize it to plain text.
	data, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	filename := filepath.Base(a.cfg.InputPath)
	raw := normalize.Normalize(filename, data)
	text := markup.ToPlainText(raw)
	log.Debug().Str("file", filename).Int("bytes", len(data)).Int("chars", len(text)).Msg("normalized brief")

	// 2) Extract facts and surface what fell back to defaults, so an
	// operator can notice (not auto-correct) a miss before sign-off.
	rec := facts.Extract(text, filename)
	logExtractionSummary(rec)

	// 3) Render content groups.
	sections := content.Render(rec)

	// 4) Export artifacts.
	paths, err := writeArtifacts(a.cfg, rec, sections)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Info().Str("out", p).Msg("wrote artifact")
	}

	// 5) Optional translated rendering.
	if a.translator != nil {
		out, err := writeTranslatedDOCX(ctx, a.cfg, a.translator, a.target, rec, sections)
		if err != nil {
			return err
		}
		log.Info().Str("out", out).Str("lang", a.target).Msg("wrote translated artifact")
	}
	return nil
}

func logExtractionSummary(rec facts.Record) {
	ev := log.Info().
		Str("title", rec.Title).
		Strs("markets", rec.Markets).
		Str("cap", rec.EntryCapPerWeek).
		Str("featured", rec.Featured).
		Int("windows", len(rec.WeeklyWindows)).
		Int("prizes", len(rec.Prizes))
	if rec.StartDate != "" || rec.EndDate != "" {
		ev = ev.Str("start", rec.StartDate).Str("end", rec.EndDate)
	}
	ev.Msg("extracted facts")

	if rec.Title == facts.DefaultTitle {
		log.Warn().Msg("no title cue found; using default title")
	}
	if rec.Mechanic == facts.DefaultMechanic {
		log.Warn().Msg("no mechanic sentence found; using default mechanic")
	}
}
