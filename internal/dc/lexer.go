package dc

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

type lexRule struct {
	kind TokenKind
	re   *regexp.Regexp
}

// Rules are tried top to bottom. The word rule must stay last so that
// delimiter characters are never absorbed into a word.
var lexRules = []lexRule{
	{OutputFormatMarker, regexp.MustCompile("^`")},
	{SuspectInfoOpen, regexp.MustCompile(`^<`)},
	{SuspectInfoClose, regexp.MustCompile(`^>`)},
	{ChargeInfoOpen, regexp.MustCompile(`^\[`)},
	{ChargeInfoClose, regexp.MustCompile(`^\]`)},
	{StatuteMarker, regexp.MustCompile(`^@`)},
	{ChargingOfficerOpen, regexp.MustCompile(`^\{`)},
	{ChargingOfficerClose, regexp.MustCompile(`^\}`)},
	{CommentMarker, regexp.MustCompile(`^#`)},
	{Word, regexp.MustCompile(`^[A-Za-z0-9;,.?$!%&'()*+_/-]+`)},
}

const snippetLen = 24

// Tokenize converts DC source text into its full token sequence.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	pos := skipSpace(source, 0)
	for pos < len(source) {
		rest := source[pos:]
		matched := false
		for _, r := range lexRules {
			m := r.re.FindString(rest)
			if m == "" {
				continue
			}
			tokens = append(tokens, Token{Kind: r.kind, Text: m, Offset: pos})
			pos += len(m)
			matched = true
			break
		}
		if !matched {
			return nil, &LexError{Offset: pos, Snippet: snippet(rest)}
		}
		pos = skipSpace(source, pos)
	}
	return tokens, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
