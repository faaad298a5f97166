// Package dc implements the lexer and validating parser for the DC draft
// charge markup language.
package dc

import "strings"

// TokenKind identifies the lexical class of a token.
type TokenKind uint8

const (
	Word TokenKind = iota
	OutputFormatMarker
	SuspectInfoOpen
	SuspectInfoClose
	ChargeInfoOpen
	ChargeInfoClose
	StatuteMarker
	ChargingOfficerOpen
	ChargingOfficerClose
	CommentMarker
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case Word:
		return "WORD"
	case OutputFormatMarker:
		return "OUTPUT_FORMAT"
	case SuspectInfoOpen:
		return "L_SUSPECT_INFO"
	case SuspectInfoClose:
		return "R_SUSPECT_INFO"
	case ChargeInfoOpen:
		return "L_CHARGE_INFO"
	case ChargeInfoClose:
		return "R_CHARGE_INFO"
	case StatuteMarker:
		return "STATUTE_INFO"
	case ChargingOfficerOpen:
		return "L_CHARGING_OFFICER_INFO"
	case ChargingOfficerClose:
		return "R_CHARGING_OFFICER_INFO"
	case CommentMarker:
		return "COMMENT"
	}
	return "UNKNOWN"
}

// MarshalText encodes the kind by name.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single lexeme of DC source.
type Token struct {
	Kind   TokenKind `json:"kind"`
	Text   string    `json:"text"`
	Offset int       `json:"offset"` // byte offset into the source
}

// Join re-serializes tokens as their literal text separated by single spaces.
// Tokenizing the result yields the same kinds and texts.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
