package main

import "regexp"

// CellReferencePattern matches a whole cell id token: uppercase letters followed by digits.
// Word boundaries keep `A1` from matching inside `A10`, `XA1` or `A1B`.
const CellReferencePattern = `\b[A-Z]+[0-9]+\b`

type ReferenceScanner struct {
	pattern *regexp.Regexp
}

func NewReferenceScanner() *ReferenceScanner {
	return &ReferenceScanner{
		pattern: regexp.MustCompile(CellReferencePattern),
	}
}

// Scan returns distinct cell ids in order of first appearance.
func (s *ReferenceScanner) Scan(formula string) []string {
	matches := s.pattern.FindAllString(formula, -1)
	references := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))

	for _, match := range matches {
		if !seen[match] {
			seen[match] = true
			references = append(references, match)
		}
	}

	return references
}

// Replace substitutes every whole-token reference using the same matcher as Scan.
func (s *ReferenceScanner) Replace(formula string, replacement func(cellId string) string) string {
	return s.pattern.ReplaceAllStringFunc(formula, replacement)
}
