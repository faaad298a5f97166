package dc

import "strings"

// parser holds the state of a single pass over one block's tokens.
type parser struct {
	tokens []Token
	rec    Record
	stack  matchStack

	// active is the data-carrying scope words accumulate into, or ScopeNone.
	active ScopeKind
	buf    strings.Builder

	openedAt [numScopes]int
	closed   [numScopes]bool
}

// ParseBlock tokenizes, validates and completeness-checks one block.
func ParseBlock(source string) (*Record, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	rec, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	if err := CheckComplete(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseTokens walks the token sequence once, matching delimiters and
// materializing each section as it closes. The returned record has not been
// checked for completeness.
func ParseTokens(tokens []Token) (*Record, error) {
	p := &parser{tokens: tokens}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// Everything inside a comment is inert until the closing marker.
		if p.stack.has(ScopeComment) && tok.Kind != CommentMarker {
			continue
		}

		var err error
		switch tok.Kind {
		case OutputFormatMarker:
			i, err = p.outputFormat(i)
		case SuspectInfoOpen:
			err = p.open(i, ScopeSuspectInfo, SuspectInfoClose)
		case ChargeInfoOpen:
			err = p.open(i, ScopeChargeInfo, ChargeInfoClose)
		case ChargingOfficerOpen:
			err = p.open(i, ScopeChargingOfficer, ChargingOfficerClose)
		case SuspectInfoClose:
			err = p.close(i, ScopeSuspectInfo)
		case ChargeInfoClose:
			err = p.close(i, ScopeChargeInfo)
		case ChargingOfficerClose:
			err = p.close(i, ScopeChargingOfficer)
		case StatuteMarker:
			if p.stack.has(ScopeStatute) {
				err = p.close(i, ScopeStatute)
			} else {
				err = p.open(i, ScopeStatute, StatuteMarker)
			}
		case CommentMarker:
			err = p.comment(i)
		case Word:
			p.word(tok)
		default:
			err = &SyntaxError{Reason: ReasonUnknownToken, Offset: tok.Offset, Text: tok.Text}
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 0 {
		s := p.stack[0]
		return nil, &SyntaxError{Reason: ReasonUnmatched, Scope: s, Offset: p.openedAt[s]}
	}
	rec := p.rec
	return &rec, nil
}

// outputFormat handles the toggle marker around the format literal. On open
// it consumes the literal and checks the closing marker by lookahead; it
// returns the index of the last token it consumed.
func (p *parser) outputFormat(i int) (int, error) {
	tok := p.tokens[i]
	if p.stack.has(ScopeOutputFormat) {
		p.stack.remove(ScopeOutputFormat)
		return i, nil
	}
	if p.rec.OutputFormat != "" {
		return i, &SyntaxError{Reason: ReasonDuplicate, Scope: ScopeOutputFormat, Offset: tok.Offset}
	}
	p.stack.push(ScopeOutputFormat)
	p.openedAt[ScopeOutputFormat] = tok.Offset

	if i+1 >= len(p.tokens) {
		return i, &SyntaxError{Reason: ReasonUnmatched, Scope: ScopeOutputFormat, Offset: tok.Offset}
	}
	name := p.tokens[i+1]
	format, ok := ParseOutputFormat(name.Text)
	if name.Kind != Word || !ok {
		return i, &SyntaxError{Reason: ReasonUnknownFormat, Scope: ScopeOutputFormat, Offset: name.Offset, Text: name.Text}
	}
	if i+2 >= len(p.tokens) || p.tokens[i+2].Kind != OutputFormatMarker {
		return i, &SyntaxError{Reason: ReasonUnmatched, Scope: ScopeOutputFormat, Offset: tok.Offset}
	}
	p.rec.OutputFormat = format
	return i + 1, nil
}

func (p *parser) open(i int, scope ScopeKind, closer TokenKind) error {
	tok := p.tokens[i]
	if p.closed[scope] {
		return &SyntaxError{Reason: ReasonDuplicate, Scope: scope, Offset: tok.Offset}
	}
	if p.active != ScopeNone {
		return &SyntaxError{Reason: ReasonNested, Scope: scope, Offset: tok.Offset}
	}
	if !p.closerAhead(i, closer) {
		return &SyntaxError{Reason: ReasonUnmatched, Scope: scope, Offset: tok.Offset}
	}
	p.stack.push(scope)
	p.openedAt[scope] = tok.Offset
	p.active = scope
	p.buf.Reset()
	return nil
}

func (p *parser) close(i int, scope ScopeKind) error {
	if !p.stack.has(scope) {
		return &SyntaxError{Reason: ReasonUnmatched, Scope: scope, Offset: p.tokens[i].Offset}
	}
	p.stack.remove(scope)
	text := p.buf.String()
	p.buf.Reset()
	p.active = ScopeNone
	p.closed[scope] = true
	return materialize(scope, text, &p.rec)
}

func (p *parser) comment(i int) error {
	if p.stack.has(ScopeComment) {
		p.stack.remove(ScopeComment)
		return nil
	}
	tok := p.tokens[i]
	if !p.closerAhead(i, CommentMarker) {
		return &SyntaxError{Reason: ReasonUnmatched, Scope: ScopeComment, Offset: tok.Offset}
	}
	p.stack.push(ScopeComment)
	p.openedAt[ScopeComment] = tok.Offset
	return nil
}

func (p *parser) word(tok Token) {
	if !p.active.carriesData() {
		return
	}
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(tok.Text)
}

// closerAhead scans the tokens after i for one of the given kind.
func (p *parser) closerAhead(i int, kind TokenKind) bool {
	for _, t := range p.tokens[i+1:] {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
