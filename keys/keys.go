package keys

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Exam identifiers ("60A-4", "60P-12") arrive from independently produced
// batches with inconsistent casing and whitespace. Normalize is the single
// bridge between them: every lookup key and every stored canonical key goes
// through it, on all ingestion paths alike.

var (
	whitespace     = regexp.MustCompile(`\s+`)
	trailingDigits = regexp.MustCompile(`(\d+)$`)
	extension      = regexp.MustCompile(`\.[^/.]+$`)
)

// Normalize lowercases, trims and strips internal whitespace from a raw
// identifier. Idempotent.
func Normalize(raw string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "")
}

// NormalizeFilename strips the final extension before normalizing, so a
// listing-derived key ("60A-4.png") and a typed key ("60A-4") agree.
func NormalizeFilename(name string) string {
	return Normalize(extension.ReplaceAllString(name, ""))
}

// SortWeight maps an identifier to its display-order rank: ascending
// question number, with afternoon/supplementary ("P") identifiers after
// all morning ones. Identifiers without a trailing number sort last.
func SortWeight(raw string) int {
	key := Normalize(raw)
	m := trailingDigits.FindString(key)
	if m == "" {
		return math.MaxInt
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// digit runs long enough to overflow are as unparseable as none
		return math.MaxInt
	}
	if strings.Contains(key, "p") {
		return 1000 + n
	}
	return n
}
