package engine

import "strings"

// Placeholder syntax: {{NAME}} where NAME matches [A-Za-z_][A-Za-z0-9_]*.
// A backslash immediately before the opening delimiter escapes it: \{{
// emits a literal {{ and suppresses token recognition. An opening delimiter
// not followed by a well-formed token (e.g. the {{#if of a Handlebars file,
// or GitHub Actions' ${{ expr }}) is treated as literal text.

// Resolve substitutes every placeholder in body with its binding.
//
// The body is scanned once to collect the distinct placeholder names; if
// any name has no binding, Resolve fails with UnboundPlaceholderError and
// produces no output at all - partial substitution never happens. The
// substitution pass is strictly left to right and replacement text is never
// re-scanned, so a binding value that happens to contain {{OTHER}} comes
// through verbatim.
func Resolve(body string, bindings map[string]string) (string, error) {
	for _, name := range Placeholders(body) {
		if _, ok := bindings[name]; !ok {
			return "", &UnboundPlaceholderError{Name: name}
		}
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		if isEscapedDelim(body, i) {
			b.WriteString("{{")
			i += 3
			continue
		}
		if name, end, ok := scanToken(body, i); ok {
			b.WriteString(bindings[name])
			i = end
			continue
		}
		b.WriteByte(body[i])
		i++
	}
	return b.String(), nil
}

// Placeholders returns the distinct placeholder names in body, in order of
// first appearance. Escaped delimiters and malformed tokens contribute
// nothing.
func Placeholders(body string) []string {
	var names []string
	seen := make(map[string]bool)
	for i := 0; i < len(body); {
		if isEscapedDelim(body, i) {
			i += 3
			continue
		}
		if name, end, ok := scanToken(body, i); ok {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			i = end
			continue
		}
		i++
	}
	return names
}

// isEscapedDelim reports whether body[i:] starts with the escape sequence \{{.
func isEscapedDelim(body string, i int) bool {
	return body[i] == '\\' && strings.HasPrefix(body[i+1:], "{{")
}

// scanToken attempts to read a well-formed {{NAME}} token starting at i.
// On success it returns the name and the index just past the closing }}.
func scanToken(body string, i int) (name string, end int, ok bool) {
	if !strings.HasPrefix(body[i:], "{{") {
		return "", 0, false
	}
	j := i + 2
	if j >= len(body) || !isNameStart(body[j]) {
		return "", 0, false
	}
	k := j + 1
	for k < len(body) && isNameChar(body[k]) {
		k++
	}
	if !strings.HasPrefix(body[k:], "}}") {
		return "", 0, false
	}
	return body[j:k], k + 2, true
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
