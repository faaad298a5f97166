package block

import (
	"strings"
	"unicode"
)

// Config controls block splitting.
type Config struct {
	Separator string // Sentinel between sibling charge blocks.
}

// DefaultConfig returns the standard separator.
func DefaultConfig() Config {
	return Config{Separator: "---"}
}

// Block is one charge description isolated from its siblings.
type Block struct {
	Index int    // 1-based sequence number among non-empty blocks
	Line  int    // 1-based source line of the block's first non-space character
	Text  string // Block source with the separator stripped
}

// Split breaks a source into blocks on the separator. Segments containing
// only whitespace are dropped and do not consume an index.
func Split(source string, cfg Config) []Block {
	if cfg.Separator == "" {
		cfg.Separator = DefaultConfig().Separator
	}

	var blocks []Block
	line := 1
	for i, seg := range strings.Split(source, cfg.Separator) {
		if i > 0 {
			line += strings.Count(cfg.Separator, "\n")
		}
		trimmed := strings.TrimLeftFunc(seg, unicode.IsSpace)
		if strings.TrimSpace(trimmed) != "" {
			lead := seg[:len(seg)-len(trimmed)]
			blocks = append(blocks, Block{
				Index: len(blocks) + 1,
				Line:  line + strings.Count(lead, "\n"),
				Text:  seg,
			})
		}
		line += strings.Count(seg, "\n")
	}
	return blocks
}
