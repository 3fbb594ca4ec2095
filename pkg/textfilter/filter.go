// Package textfilter softens profanity in player text for worlds that are not
// in NSFW mode.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replacements maps a word to its family-friendly alternative.
// Longer phrases come first so they win over their substrings.
var replacements = []struct {
	word        string
	replacement string
}{
	{"motherfucker", "mother-trucker"},
	{"jesus christ", "jeez"},
	{"bullshit", "baloney"},
	{"horseshit", "nonsense"},
	{"goddamn", "gosh-dang"},
	{"asshole", "jerk"},
	{"dumbass", "dummy"},
	{"jackass", "jerk"},
	{"dipshit", "dummy"},
	{"shithead", "jerk"},
	{"dickhead", "jerk"},
	{"douchebag", "jerk"},
	{"bastard", "jerk"},
	{"bitch", "jerk"},
	{"fuck", "fudge"},
	{"shit", "shoot"},
	{"damn", "dang"},
	{"hell", "heck"},
	{"crap", "crud"},
	{"piss", "ticked"},
	{"prick", "jerk"},
	{"ass", "butt"},
	{"whore", "[censored]"},
	{"slut", "[censored]"},
	{"cock", "[censored]"},
	{"pussy", "[censored]"},
}

type pattern struct {
	re          *regexp.Regexp
	replacement string
}

// Filter replaces whole-word profanity while keeping the original casing.
// A Filter is safe for concurrent use.
type Filter struct {
	patterns []pattern
}

// New compiles the word list.
func New() *Filter {
	f := &Filter{patterns: make([]pattern, 0, len(replacements))}
	for _, r := range replacements {
		f.patterns = append(f.patterns, pattern{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(r.word) + `\b`),
			replacement: r.replacement,
		})
	}
	return f
}

// Clean returns text with every listed word replaced.
func (f *Filter) Clean(text string) string {
	for _, p := range f.patterns {
		text = p.re.ReplaceAllStringFunc(text, func(match string) string {
			return matchCase(match, p.replacement)
		})
	}
	return text
}

// Contains reports whether text has any listed word.
func (f *Filter) Contains(text string) bool {
	for _, p := range f.patterns {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}

// matchCase applies the casing pattern of original to replacement.
func matchCase(original, replacement string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(replacement)
	case original == strings.ToLower(original):
		return strings.ToLower(replacement)
	}

	title := cases.Title(language.English)
	if title.String(strings.ToLower(original)) == original {
		return title.String(replacement)
	}

	// Mixed case: copy case rune by rune, lowercase the overflow.
	orig := []rune(original)
	out := []rune(replacement)
	for i, r := range out {
		if i < len(orig) && unicode.IsUpper(orig[i]) {
			out[i] = unicode.ToUpper(r)
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
