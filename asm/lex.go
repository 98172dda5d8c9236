package asm

import "strings"

// forbiddenChar reports whether b is disallowed anywhere in an
// instruction line: '@' (reserved for block headers), any control
// character other than '\t', and anything above '~'.
func forbiddenChar(b byte) bool {
	if b == '@' {
		return true
	}
	if b == '\t' {
		return false
	}
	if b < 0x20 || b > '~' {
		return true
	}
	return false
}

// stripComment removes a trailing "# ..." comment, honoring neither
// quoting nor escaping: the reference assembler has no string literals.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// replaceFirstBang turns a single '!' anywhere in the line into a space,
// matching the reference's tolerance for the shorthand some solutions use
// in place of a comma or space before an operand.
func replaceFirstBang(line string) string {
	if i := strings.IndexByte(line, '!'); i >= 0 {
		return line[:i] + " " + line[i+1:]
	}
	return line
}

// splitLabel separates a line into its label name(s) and trailing body.
// Labels are "NAME:" prefixes; splitLabel returns every label found (in
// order) and the remaining instruction text. A line with no colon
// returns a nil label slice and the original text as body.
func splitLabel(line string) (labels []string, body string) {
	rest := line
	for {
		i := strings.IndexByte(rest, ':')
		if i < 0 {
			break
		}
		name := strings.TrimSpace(rest[:i])
		if name == "" {
			break
		}
		labels = append(labels, name)
		rest = rest[i+1:]
	}
	return labels, rest
}

// fields splits body on whitespace and commas, dropping empty tokens,
// matching the reference tokenizer's "split on whitespace or commas".
func fields(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\r'
	})
}
