package app

import "time"

// Config holds runtime configuration for one brief-to-content run.
type Config struct {
	// InputPath is the brief to ingest; the filename's extension selects
	// the normalizer strategy chain.
	InputPath string

	// OutDir receives all artifacts. Basename overrides the default name
	// derived from the extracted title.
	OutDir   string
	Basename string

	// EnablePDF additionally writes a PDF rendering of the content pack.
	EnablePDF bool

	// Translation (optional). TranslateLang is a BCP 47 tag such as "it";
	// when set, an OpenAI-compatible endpoint must be configured.
	TranslateLang string
	LLMBaseURL    string
	LLMModel      string
	LLMAPIKey     string

	// CacheDir stores translated paragraphs between runs.
	CacheDir    string
	CacheMaxAge time.Duration

	Verbose bool
}
