package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/gopromo/internal/translate"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env.
type FileConfig struct {
	Input string `yaml:"input" json:"input"`

	Out struct {
		Dir      string `yaml:"dir" json:"dir"`
		Basename string `yaml:"basename" json:"basename"`
	} `yaml:"out" json:"out"`

	EnablePDF bool `yaml:"enablePDF" json:"enablePDF"`

	Translate struct {
		Lang string `yaml:"lang" json:"lang"`
	} `yaml:"translate" json:"translate"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
	} `yaml:"cache" json:"cache"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON.
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that
// are currently unset. Flags should already have been parsed; file config
// supplies defaults while explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutDir == "" && fc.Out.Dir != "" {
		cfg.OutDir = fc.Out.Dir
	}
	if cfg.Basename == "" && fc.Out.Basename != "" {
		cfg.Basename = fc.Out.Basename
	}
	if !cfg.EnablePDF && fc.EnablePDF {
		cfg.EnablePDF = true
	}
	if cfg.TranslateLang == "" && fc.Translate.Lang != "" {
		cfg.TranslateLang = fc.Translate.Lang
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.InputPath == "" {
		return errors.New("config: input path is required")
	}
	if cfg.OutDir == "" {
		return errors.New("config: output directory is required")
	}
	if cfg.TranslateLang != "" {
		if _, err := translate.ParseTarget(cfg.TranslateLang); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if cfg.LLMModel == "" {
			return errors.New("config: llm.model is required for translation (or set LLM_MODEL)")
		}
	}
	return nil
}
