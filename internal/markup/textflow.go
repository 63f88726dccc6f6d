package markup

import (
	"regexp"
	"strings"
)

var bulletRe = regexp.MustCompile(`^[-*•]\s+`)

// SplitBlocks breaks plain body text into paragraph blocks. Blank lines
// separate blocks; single newlines separate lines within a block. Empty
// lines and empty blocks are dropped.
func SplitBlocks(body string) [][]string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var blocks [][]string
	for _, block := range strings.Split(body, "\n\n") {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}
	return blocks
}

// BulletItem reports whether line is a bullet item ("-", "*" or "•" followed
// by whitespace) and returns the line with the marker stripped.
func BulletItem(line string) (string, bool) {
	loc := bulletRe.FindStringIndex(line)
	if loc == nil {
		return line, false
	}
	return line[loc[1]:], true
}
