package ignorefile

import "strings"

// Block is a commented group of ignore patterns.
type Block struct {
	Header   string // comment text without the leading "# "
	Patterns []string
}

// String renders the block preceded by a blank line.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	if b.Header != "" {
		sb.WriteString("# " + b.Header + "\n")
	}
	for _, p := range b.Patterns {
		sb.WriteString(p + "\n")
	}
	return sb.String()
}

// Amend appends block to content. A missing trailing newline is added
// first so the blank separator line is real. Empty content gets the block
// without the separator.
func Amend(content string, block Block) string {
	if content == "" {
		return strings.TrimPrefix(block.String(), "\n")
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + block.String()
}
