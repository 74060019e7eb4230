package ioformat

import "strings"

// isFieldSep reports whether r is one of spec §6's three recognized field
// separators.
func isFieldSep(r rune) bool {
	return r == 0x01 || r == '\t' || r == ' '
}

// splitFields splits one input line on any run of the recognized
// separators, dropping empty fields the way strings.FieldsFunc does.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, isFieldSep)
}
