// Package cache provides a small file-backed cache for translation results,
// keyed by a digest of model, target language, and source text.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// TranslationCache stores translated paragraphs on disk so repeated runs over
// the same document do not re-call the translation service.
type TranslationCache struct {
	Dir string
}

// KeyFrom builds a cache key from model, target language, and source text.
func KeyFrom(model, target, text string) string {
	h := sha256.Sum256([]byte(model + "\n" + target + "\n\n" + text))
	return hex.EncodeToString(h[:])
}

func (c *TranslationCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *TranslationCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".txt")
}

// Get returns the cached translation if present.
func (c *TranslationCache) Get(_ context.Context, key string) (string, bool) {
	if err := c.ensureDir(); err != nil {
		return "", false
	}
	p := c.pathFor(key)
	b, err := os.ReadFile(p)
	if err != nil {
		return "", false
	}
	// Touch mtime on access so age-based purges keep hot entries.
	now := time.Now()
	_ = os.Chtimes(p, now, now)
	return string(b), true
}

// Save writes a translation to the cache. Failures are non-fatal for callers;
// the translation itself already succeeded.
func (c *TranslationCache) Save(_ context.Context, key, translated string) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), []byte(translated), 0o644)
}

// PurgeByAge removes entries older than maxAge and reports how many were
// deleted. A zero maxAge disables purging.
func PurgeByAge(dir string, maxAge time.Duration) (int, error) {
	if dir == "" || maxAge <= 0 {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(dir, e.Name())) == nil {
				removed++
			}
		}
	}
	return removed, nil
}
