package answercache

import (
	"regexp"
	"strings"
)

// nonAlnum matches every run of characters outside [a-z0-9]. Runs collapse
// into a single separator so punctuation and whitespace variants of the same
// question share one cache slot.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

const maxKeyLen = 100

// NormalizeKey derives the canonical cache key for a question. It is a pure
// function of the question text: lowercase, non-alphanumeric runs replaced
// by "_", truncated to 100 characters. Two questions differing only in case,
// punctuation or whitespace map to the same key on purpose, which maximizes
// the cache hit rate.
func NormalizeKey(question string) string {
	key := nonAlnum.ReplaceAllString(strings.ToLower(question), "_")
	// Edge punctuation must not change the key: "...fibrillation?" and
	// "...fibrillation" share one slot.
	key = strings.Trim(key, "_")
	if len(key) > maxKeyLen {
		key = strings.TrimRight(key[:maxKeyLen], "_")
	}
	return key
}
