package extract

import (
	"regexp"
	"strings"
)

// Input carries the two text views every extractor receives. High-value
// identifying fields conventionally sit on page one, so patterns get a shot
// at the first page before the whole document.
type Input struct {
	FullText  string
	Page1Text string
}

// normalizeInput runs Normalize over both views; extraction never sees raw text.
func normalizeInput(in Input) Input {
	return Input{
		FullText:  Normalize(in.FullText),
		Page1Text: Normalize(in.Page1Text),
	}
}

// strategy attempts to extract one field and returns the raw matched fragment,
// or "" when it has nothing. Strategies never fail hard: a malformed or
// non-matching pattern is just an empty result.
type strategy func(in Input) string

// anchorWindow bounds how far past an anchor phrase a proximity search looks.
const anchorWindow = 1000

// findFirst returns the first capture group of expr in text, trimmed.
// Compilation errors count as a non-match.
func findFirst(expr, text string) string {
	re, err := regexp.Compile(expr)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// page1First searches the first page, retrying the same pattern against the
// whole document on failure.
func page1First(expr string) strategy {
	return func(in Input) string {
		if v := findFirst(expr, in.Page1Text); v != "" {
			return v
		}
		return findFirst(expr, in.FullText)
	}
}

// global searches the entire document.
func global(expr string) strategy {
	return func(in Input) string {
		return findFirst(expr, in.FullText)
	}
}

// anchored locates an anchor phrase in the full document and applies expr only
// to a bounded window of text immediately following it. Searching near the
// clause the value belongs to avoids matching an unrelated figure elsewhere.
func anchored(anchor, expr string) strategy {
	return func(in Input) string {
		anchorRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(anchor))
		if err != nil {
			return ""
		}
		loc := anchorRe.FindStringIndex(in.FullText)
		if loc == nil {
			return ""
		}
		end := loc[1] + anchorWindow
		if end > len(in.FullText) {
			end = len(in.FullText)
		}
		return findFirst(expr, in.FullText[loc[1]:end])
	}
}

// firstNonEmpty evaluates strategies in priority order and short-circuits on
// the first non-empty result.
func firstNonEmpty(in Input, strategies ...strategy) string {
	for _, s := range strategies {
		if v := s(in); v != "" {
			return v
		}
	}
	return ""
}
