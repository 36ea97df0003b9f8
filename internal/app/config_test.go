package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{InputPath: "flag.docx", OutDir: ""}
	var fc FileConfig
	fc.Input = "file.docx"
	fc.Out.Dir = "from-file"
	fc.EnablePDF = true
	fc.Cache.MaxAge = time.Hour

	ApplyFileConfig(&cfg, fc)

	if cfg.InputPath != "flag.docx" {
		t.Fatalf("input: got %q", cfg.InputPath)
	}
	if cfg.OutDir != "from-file" {
		t.Fatalf("outdir: got %q", cfg.OutDir)
	}
	if !cfg.EnablePDF {
		t.Fatalf("enablePDF not applied")
	}
	if cfg.CacheMaxAge != time.Hour {
		t.Fatalf("cacheMaxAge: got %v", cfg.CacheMaxAge)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopromo.yaml")
	body := "input: brief.docx\nout:\n  dir: dist\ntranslate:\n  lang: it\nllm:\n  model: gpt-4o-mini\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Input != "brief.docx" || fc.Out.Dir != "dist" || fc.Translate.Lang != "it" || fc.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("got %+v", fc)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
	if err := ValidateConfig(Config{InputPath: "a", OutDir: "b"}); err != nil {
		t.Fatalf("minimal config should validate: %v", err)
	}
	err := ValidateConfig(Config{InputPath: "a", OutDir: "b", TranslateLang: "it"})
	if err == nil {
		t.Fatalf("translation without model should fail")
	}
	if err := ValidateConfig(Config{InputPath: "a", OutDir: "b", TranslateLang: "it", LLMModel: "m"}); err != nil {
		t.Fatalf("translation config should validate: %v", err)
	}
}

func TestApplyEnvToConfig_FlagPrecedence(t *testing.T) {
	t.Setenv("LLM_MODEL", "from-env")
	t.Setenv("TRANSLATE_LANG", "es")
	cfg := Config{LLMModel: "from-flag"}
	ApplyEnvToConfig(&cfg)
	if cfg.LLMModel != "from-flag" {
		t.Fatalf("model: got %q", cfg.LLMModel)
	}
	if cfg.TranslateLang != "es" {
		t.Fatalf("lang: got %q", cfg.TranslateLang)
	}
}
