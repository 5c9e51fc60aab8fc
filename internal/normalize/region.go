package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Administrative designation words removed from raw region labels. These
// suffixes vary per country and are the dominant source of mismatch with the
// geometry catalog's bare place names. Order matters: "State of" must come
// before "State" so the longer phrase wins.
var adminWords = []string{
	"County", "Province", "State of", "State", "Governorate",
	"Region", "Special Region", "District", "City", "Prefecture", "Oblast",
}

var reAdminWord = regexp.MustCompile(`(?i)\b(?:` + strings.Join(adminWords, "|") + `)\b`)

var reWhitespace = regexp.MustCompile(`\s+`)

// CleanRegion removes administrative-designation words as whole words
// (case-insensitive) and then removes all remaining whitespace. Case,
// diacritics and punctuation are preserved: the override table keys depend
// on them. Pure function; empty input passes through unchanged.
//
//	"Lower Saxony"       -> "LowerSaxony"   (no admin word, whitespace gone)
//	"Province of Bergamo" -> "ofBergamo"
//	"Kyivs'ka Oblast"     -> "Kyivs'ka"
func CleanRegion(raw string) string {
	if raw == "" {
		return raw
	}
	s := stripAdminWords(raw)
	return reWhitespace.ReplaceAllString(s, "")
}

// stripAdminWords removes whole-word admin-word matches. The regexp's \b is
// ASCII-only, so it sees a boundary between "Oblast" and "í"; a match touching
// a non-ASCII letter or digit is part of a longer word and must be kept.
func stripAdminWords(s string) string {
	matches := reAdminWord.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		if wordRuneBefore(s, m[0]) || wordRuneAt(s, m[1]) {
			continue
		}
		b.WriteString(s[prev:m[0]])
		prev = m[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

func wordRuneBefore(s string, i int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:i])
	return size > 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func wordRuneAt(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	return size > 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

var foldChain = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold reduces a label to an accent-free, lowercase, alphanumeric-only key
// for exact-match lookups in the interactive path. Stored values are never
// folded; this only builds lookup keys, so "Jönköping" and "Jonkoping"
// land on the same key.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range folded {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
