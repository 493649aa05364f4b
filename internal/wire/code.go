package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a single move: a direction and a positive number of unit steps.
type Code struct {
	Dir   Direction
	Steps int
}

func (c Code) String() string { return fmt.Sprintf("%s%d", c.Dir, c.Steps) }

// ParseCode parses a code of the form <Letter><PositiveInteger>, e.g. "U7".
// Surrounding whitespace is ignored.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, &ParseError{Reason: "empty code"}
	}

	dir := Direction(s[0])
	if !dir.Valid() {
		return Code{}, &ParseError{Code: s, Reason: fmt.Sprintf("unknown direction %q", s[:1])}
	}

	steps, err := strconv.Atoi(s[1:])
	if err != nil {
		return Code{}, &ParseError{Code: s, Reason: "step count is not an integer"}
	}
	if steps <= 0 {
		return Code{}, &ParseError{Code: s, Reason: "step count must be positive"}
	}

	return Code{Dir: dir, Steps: steps}, nil
}

// ParseCodes parses each entry of a list of codes in order. Failures carry
// the 1-based index of the offending code.
func ParseCodes(raw []string) ([]Code, error) {
	if len(raw) == 0 {
		return nil, &ParseError{Reason: "wire has no codes"}
	}

	codes := make([]Code, 0, len(raw))
	for i, s := range raw {
		c, err := ParseCode(s)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Index = i + 1
			}
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// ParseLine parses a comma-separated list of codes such as "R8,U5,L5,D3".
func ParseLine(line string) ([]Code, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &ParseError{Reason: "wire has no codes"}
	}
	return ParseCodes(strings.Split(line, ","))
}

// FormatLine is the inverse of ParseLine.
func FormatLine(codes []Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
