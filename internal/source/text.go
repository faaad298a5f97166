package source

import (
	"bufio"
	"io"
	"strings"
)

// TextLoader handles plain .dc and .txt files.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) (*Source, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Source{
		Name: Name(filename),
		Text: strings.Join(lines, "\n"),
	}, nil
}
