package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a plain-text dictionary, one entry per line. An entry is a
// word optionally followed by '/' and inflection markers:
//
//	car/s   -> car, cars
//	bake/v  -> bake, bakes, baked, baking
//	stop/w  -> stop, stops, stopped, stopping ('w' doubles the final
//	           consonant before -ed/-ing)
//	tall/x  -> tall, taller, tallest
//
// Markers may be combined ("walk/sv"). Derived forms that collide with
// entries already present, or with each other, are collapsed; a root
// carrying both /v and /w yields the -s form twice and the set absorbs
// it. Derived forms outside the 3-15 length bounds are dropped silently;
// a malformed root is an error.
//
// Blank lines and lines starting with ';' are ignored. Entries are
// lowercased before storing.
func Load(r io.Reader) (*Set, error) {
	s := NewSet()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if err := s.AddEntry(strings.ToLower(line)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}
	return s, nil
}

// LoadFile loads a plain-text dictionary from a file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// AddEntry stores a dictionary entry, expanding any inflection markers.
func (s *Set) AddEntry(entry string) error {
	root := entry
	markers := ""
	if i := strings.IndexByte(entry, '/'); i >= 0 {
		root, markers = entry[:i], entry[i+1:]
	}
	if err := s.Add(root); err != nil {
		return err
	}
	for i := 0; i < len(markers); i++ {
		forms, err := inflect(root, markers[i])
		if err != nil {
			return err
		}
		for _, form := range forms {
			if len(form) < MinWordLen || len(form) > MaxWordLen {
				continue
			}
			if err := s.Add(form); err != nil {
				return err
			}
		}
	}
	return nil
}

// inflect derives the inflected forms of a root for one marker.
func inflect(root string, marker byte) ([]string, error) {
	switch marker {
	case 's':
		return []string{plural(root)}, nil
	case 'v':
		stem := root
		if strings.HasSuffix(root, "e") {
			stem = root[:len(root)-1]
		}
		return []string{plural(root), stem + "ed", stem + "ing"}, nil
	case 'w':
		stem := root + root[len(root)-1:]
		return []string{plural(root), stem + "ed", stem + "ing"}, nil
	case 'x':
		stem := root
		if strings.HasSuffix(root, "e") {
			stem = root[:len(root)-1]
		}
		return []string{stem + "er", stem + "est"}, nil
	default:
		return nil, fmt.Errorf("unknown inflection marker %q on %q", marker, root)
	}
}

// plural appends -s, or -es after a sibilant ending.
func plural(root string) string {
	if strings.HasSuffix(root, "s") || strings.HasSuffix(root, "x") ||
		strings.HasSuffix(root, "z") || strings.HasSuffix(root, "ch") ||
		strings.HasSuffix(root, "sh") {
		return root + "es"
	}
	return root + "s"
}
