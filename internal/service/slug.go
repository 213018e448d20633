package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"instituteCMS/internal/models"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// slugify lowercases s, strips accents and joins words with single hyphens.
func slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.Join(strings.Fields(result), "-")
	result = slugInvalidChars.ReplaceAllString(result, "")
	result = slugHyphenRuns.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// normalizeSlug returns nil when s has no usable characters. Slugs shaped
// like an id are rejected because path lookups would resolve them by id.
func normalizeSlug(s string) (*string, error) {
	slug := slugify(s)
	if slug == "" {
		return nil, nil
	}

	if models.IsObjectID(slug) {
		return nil, fmt.Errorf("%w: slug %q looks like an id", models.ErrValidation, slug)
	}

	return &slug, nil
}
