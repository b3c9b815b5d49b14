package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geange/automaton/v2"
)

// Section The lines of one "[Name] ... DONE" block. Lines are trimmed; blank lines
// and comments are dropped. LineNumbers holds the source line of every entry.
type Section struct {
	Name        string
	Lines       []string
	LineNumbers []int
}

// Sections Named blocks in file order. A name declared twice accumulates its lines
// into the first block.
type Sections struct {
	order  []string
	blocks map[string]*Section
}

// Get Returns the block named name, ignoring case.
func (s *Sections) Get(name string) (*Section, bool) {
	sec, ok := s.blocks[strings.ToUpper(name)]
	return sec, ok
}

// Names Returns the section names as first written, in file order.
func (s *Sections) Names() []string {
	names := make([]string, 0, len(s.order))
	for _, k := range s.order {
		names = append(names, s.blocks[k].Name)
	}
	return names
}

// ReadSections Splits a definition file into its sections. Lines outside a section
// are ignored; a section left open at a new header or at the end of input is an
// error.
func ReadSections(r io.Reader) (*Sections, error) {
	out := &Sections{blocks: make(map[string]*Section)}
	scanner := bufio.NewScanner(r)

	var current *Section
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']':
			if current != nil {
				return nil, sectionError(current.Name, line, lineNo, "section not terminated by DONE")
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, sectionError("", line, lineNo, "empty section name")
			}
			key := strings.ToUpper(name)
			sec, ok := out.blocks[key]
			if !ok {
				sec = &Section{Name: name}
				out.blocks[key] = sec
				out.order = append(out.order, key)
			}
			current = sec
		case strings.EqualFold(line, "DONE"):
			current = nil
		case current != nil:
			current.Lines = append(current.Lines, line)
			current.LineNumbers = append(current.LineNumbers, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		return nil, sectionError(current.Name, "", lineNo, "section not terminated by DONE")
	}
	return out, nil
}

func sectionError(section, decl string, line int, reason string) error {
	return fmt.Errorf("line %d: %w", line, &automaton.DefinitionError{
		Section:     section,
		Declaration: decl,
		Reason:      reason,
	})
}
