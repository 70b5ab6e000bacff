package palette

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/coloromo/coloromo/internal/colorspace"
)

// LoadFile reads a palette from a text file of hex colors.
//
// The format is one color per line, e.g. "#1A2B3C" (the "#" is optional).
// Blank lines and lines starting with "#" followed by whitespace or "//" are
// ignored as comments. Duplicate colors collapse to a single member.
//
// Returns an error if the file cannot be read, a line fails to parse, or the
// file defines no colors at all.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer f.Close()

	p := New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}
		c, err := colorspace.ParseHex(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		p.Add(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette file %s defines no colors", path)
	}
	return p, nil
}

// isComment reports whether a trimmed, non-empty line is a comment rather
// than a color. A bare "#RRGGBB" is a color; "# note" and "// note" are not.
func isComment(line string) bool {
	if strings.HasPrefix(line, "//") {
		return true
	}
	if strings.HasPrefix(line, "#") {
		return !isHex(line[1:])
	}
	return false
}

// isHex reports whether s is exactly six hex digits.
func isHex(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
