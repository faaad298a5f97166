package register

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/dc4u/internal/pipeline"
	"github.com/dgallion1/dc4u/internal/source"
)

const goodBlock = "`TXT`\n" +
	"<Jane Doe;S1234567A;Chinese;29;Female;Singaporean>\n" +
	"[Theft;01/02/2023;stole a wallet]\n" +
	"@Penal Code s.379@\n" +
	"{Officer Tan;Inspector, CID;05/02/2023}"

func TestWrite(t *testing.T) {
	src := &source.Source{Name: "sample1", Text: goodBlock + "\n---\n<Jane"}
	batch := pipeline.Compile(context.Background(), src, pipeline.Options{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, batch))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Register", f.GetSheetName(0))
	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{
		"sample1", "1", "1", "rendered", "sample1-Draft-Charge-1.txt",
		"Jane Doe", "S1234567A", "Theft", "1 February 2023", "Penal Code s.379",
		"Officer Tan", "5 February 2023",
	}, rows[1])

	failed := rows[2]
	assert.Equal(t, []string{"sample1", "2", "7", "failed"}, failed[:4])
	require.Len(t, failed, len(Header))
	assert.True(t, strings.HasPrefix(failed[len(Header)-1], "block 2: syntax: "))
}

func TestWrite_MultipleBatches(t *testing.T) {
	a := pipeline.Compile(context.Background(), &source.Source{Name: "a", Text: goodBlock}, pipeline.Options{})
	b := pipeline.Compile(context.Background(), &source.Source{Name: "b", Text: goodBlock + "\n---\n" + goodBlock}, pipeline.Options{})

	f, err := Build(a, b)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "b", rows[3][0])
	assert.Equal(t, "2", rows[3][1])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
