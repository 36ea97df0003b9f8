// Package normalize converts an uploaded brief of any supported format into
// text or markup suitable for the markup stripper. Dispatch is by filename
// extension only; the declared content type is ignored.
package normalize

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Strategy converts raw document bytes into text or markup. Strategies for an
// extension are tried in order until one succeeds; every chain ends in the raw
// decoder, which accepts anything, so Normalize as a whole never fails.
type Strategy interface {
	Name() string
	TextOf(data []byte) (string, error)
}

// Normalize converts a byte blob plus filename hint into text or markup.
// Failures inside a strategy degrade to the next one in the chain; the result
// may contain binary noise on the raw path but is always a string.
func Normalize(filename string, data []byte) string {
	ext := extensionOf(filename)
	for _, s := range chainFor(ext) {
		text, err := s.TextOf(data)
		if err != nil {
			log.Debug().Err(err).Str("file", filename).Str("strategy", s.Name()).Msg("normalize strategy failed; trying next")
			continue
		}
		return text
	}
	// Unreachable: the raw strategy never errors. Kept as a hard floor.
	return decodeRaw(data)
}

func chainFor(ext string) []Strategy {
	switch ext {
	case "html", "htm":
		return []Strategy{htmlStrategy{}, rawStrategy{}}
	case "docx":
		return []Strategy{docxMarkupStrategy{}, docxPlainStrategy{}, rawStrategy{}}
	case "pdf":
		return []Strategy{pdfStrategy{}, rawStrategy{}}
	default:
		// Legacy .doc and anything unrecognised: best-effort decode only.
		// The CFB container of .doc is intentionally not parsed, so that
		// path can surface embedded binary noise.
		return []Strategy{rawStrategy{}}
	}
}

func extensionOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// htmlStrategy decodes HTML bytes as UTF-8, replacing undecodable bytes
// rather than failing. The markup itself is left for the stripper.
type htmlStrategy struct{}

func (htmlStrategy) Name() string { return "html" }

func (htmlStrategy) TextOf(data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), "�"), nil
}

// rawStrategy is the universal last resort: valid UTF-8 is kept as-is,
// anything else is widened byte-for-byte as Latin-1 so no input can fail.
type rawStrategy struct{}

func (rawStrategy) Name() string { return "raw" }

func (rawStrategy) TextOf(data []byte) (string, error) {
	return decodeRaw(data), nil
}

func decodeRaw(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
