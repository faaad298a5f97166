package dc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock = "`TXT` <Jane Doe;S1234567A;Chinese;29;Female;Singaporean> " +
	"[Theft;01/02/2023;stole a wallet] @Penal Code s.379@ " +
	"{Officer Tan;Inspector, CID;05/02/2023}"

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_SampleBlock(t *testing.T) {
	tokens, err := Tokenize(sampleBlock)
	require.NoError(t, err)

	want := []TokenKind{
		OutputFormatMarker, Word, OutputFormatMarker,
		SuspectInfoOpen, Word, Word, SuspectInfoClose,
		ChargeInfoOpen, Word, Word, Word, ChargeInfoClose,
		StatuteMarker, Word, Word, Word, StatuteMarker,
		ChargingOfficerOpen, Word, Word, Word, ChargingOfficerClose,
	}
	assert.Equal(t, want, kinds(tokens))
	assert.Equal(t, "TXT", tokens[1].Text)
	assert.Equal(t, "Doe;S1234567A;Chinese;29;Female;Singaporean", tokens[5].Text)
	assert.Equal(t, "s.379", tokens[15].Text)
	assert.Equal(t, "Tan;Inspector,", tokens[19].Text)
}

func TestTokenize_MarkersSplitWords(t *testing.T) {
	tokens, err := Tokenize("abc<def>[g]{h}@i@#j#`k`")
	require.NoError(t, err)

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	assert.Equal(t, []string{
		"abc", "<", "def", ">", "[", "g", "]", "{", "h", "}",
		"@", "i", "@", "#", "j", "#", "`", "k", "`",
	}, texts)
}

func TestTokenize_WordPunctuation(t *testing.T) {
	tests := []string{
		"s.379",
		"Inspector,",
		"$100!",
		"(a)+b*c",
		"O'Brien",
		"Mary-Jane",
		"50%&",
		"under_score?",
		"01/02/2023",
	}
	for _, word := range tests {
		tokens, err := Tokenize(word)
		require.NoError(t, err, word)
		require.Len(t, tokens, 1, word)
		assert.Equal(t, Word, tokens[0].Kind, word)
		assert.Equal(t, word, tokens[0].Text, word)
	}
}

func TestTokenize_WhitespaceAndOffsets(t *testing.T) {
	tokens, err := Tokenize("\n\t<  Jane\r\n>  ")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Token{Kind: SuspectInfoOpen, Text: "<", Offset: 2}, tokens[0])
	assert.Equal(t, Token{Kind: Word, Text: "Jane", Offset: 5}, tokens[1])
	assert.Equal(t, Token{Kind: SuspectInfoClose, Text: ">", Offset: 11}, tokens[2])
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, err := Tokenize("   \n ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_LexError(t *testing.T) {
	_, err := Tokenize("<Jane = Doe>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLex))

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 6, lexErr.Offset)
	assert.Equal(t, "= Doe>", lexErr.Snippet)
}

func TestTokenize_LexErrorSnippetTruncated(t *testing.T) {
	_, err := Tokenize("ok \"" + strings.Repeat("x", 100))
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 3, lexErr.Offset)
	assert.True(t, strings.HasSuffix(lexErr.Snippet, "..."))
	assert.LessOrEqual(t, len(lexErr.Snippet), snippetLen+3)
}

func TestJoin_RetokenizesToSameStructure(t *testing.T) {
	sources := []string{
		sampleBlock,
		"#note#`PDF`<a;b;c;1;d;e>",
		"  [  Robbery ;  1/1/2020 ; took   it ]\n\n@ Act @",
	}
	for _, src := range sources {
		first, err := Tokenize(src)
		require.NoError(t, err)
		second, err := Tokenize(Join(first))
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].Kind, second[i].Kind)
			assert.Equal(t, first[i].Text, second[i].Text)
		}
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "WORD", Word.String())
	assert.Equal(t, "L_SUSPECT_INFO", SuspectInfoOpen.String())
	assert.Equal(t, "COMMENT", CommentMarker.String())
	assert.Equal(t, "UNKNOWN", TokenKind(200).String())
}
