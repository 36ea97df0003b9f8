package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gopromo/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath     string
		outDir        string
		basename      string
		enablePDF     bool
		translateLang string
		llmBaseURL    string
		llmModel      string
		llmKey        string
		cacheDir      string
		cacheMaxAge   time.Duration
		configPath    string
		verbose       bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the promo brief (.html, .docx, .pdf, .doc or plain text)")
	flag.StringVar(&outDir, "out.dir", "", "Directory to write generated artifacts into")
	flag.StringVar(&basename, "out.basename", "", "Basename for output files (default: slug of the promotion title)")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render a PDF alongside the .docx")
	flag.StringVar(&translateLang, "translate.lang", "", "Optional BCP 47 target language for a translated .docx, e.g. 'it' or 'pt-BR'")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL for the translation service")
	flag.StringVar(&llmModel, "llm.model", "", "Model name for translation")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server")
	flag.StringVar(&cacheDir, "cache.dir", "", "Translation cache directory; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file; explicit flags win")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:     inputPath,
		OutDir:        outDir,
		Basename:      basename,
		EnablePDF:     enablePDF,
		TranslateLang: translateLang,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		CacheDir:      cacheDir,
		CacheMaxAge:   cacheMaxAge,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
