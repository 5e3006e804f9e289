package filter

import "strings"

// SplitTopLevel splits input into segments on the boolean keyword
// ("AND" or "OR"). A keyword only splits at parenthesis depth 0,
// outside double-quoted literals, and when matched as a whole word,
// case-insensitively. Each segment is returned with surrounding
// whitespace trimmed. An input without the keyword at the top level
// yields a single segment equal to the trimmed input.
func SplitTopLevel(input, keyword string) []string {
	var segments []string
	var depth int
	var inQuote bool
	start := 0

	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
			// Keywords and parentheses inside string literals are data.
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && keywordAt(input, i, keyword):
			segments = append(segments, strings.TrimSpace(input[start:i]))
			i += len(keyword)
			start = i
			continue
		}
		i++
	}

	return append(segments, strings.TrimSpace(input[start:]))
}

// keywordAt reports whether a whole-word, case-insensitive occurrence
// of keyword starts at offset i.
func keywordAt(s string, i int, keyword string) bool {
	end := i + len(keyword)
	if end > len(s) || !strings.EqualFold(s[i:end], keyword) {
		return false
	}
	if i > 0 && isWordByte(s[i-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

// isWordByte treats letters, digits, underscore, dot and any non-ASCII
// byte as word characters, so "ANDERSON" or "band" never split.
func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.':
		return true
	case c >= 0x80:
		return true
	}
	return false
}

// indexOutsideQuotes returns the byte offset of the first occurrence
// of sub in s that is not inside a double-quoted literal, or -1.
func indexOutsideQuotes(s, sub string) int {
	var inQuote bool
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i] == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote && s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
