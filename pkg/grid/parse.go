package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse builds a grid from one string per row. Letters may be given in
// either case and are stored lowercase. Every row must have the same
// width, and both dimensions are bounded by MaxSize.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	height := len(lines)
	width := len(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("empty grid row")
	}
	if width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("grid is %dx%d, larger than the %dx%d maximum", width, height, MaxSize, MaxSize)
	}

	g := New(width, height)
	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", r+1, len(line), width)
		}
		for c := 0; c < width; c++ {
			ch := line[c]
			if ch >= 'A' && ch <= 'Z' {
				ch += 'a' - 'A'
			}
			switch {
			case ch >= 'a' && ch <= 'z':
			case ch == Black || ch == Open || ch == Vowel || ch == Consonant:
			default:
				return nil, fmt.Errorf("row %d col %d: illegal cell character %q", r+1, c+1, line[c])
			}
			g.Set(r, c, ch)
		}
	}
	return g, nil
}

// Read parses a grid from a reader, one row per line. Blank lines and
// lines starting with ';' are ignored.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grid: %w", err)
	}
	return Parse(lines)
}

// ReadFile loads a grid from a file.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
