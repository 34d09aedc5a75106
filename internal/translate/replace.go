package translate

import "strings"

// ReplaceOutsideQuotes replaces every occurrence of from with to except
// occurrences inside single- or double-quoted spans. Matches are found
// left to right and never overlap; after a replacement the scan resumes
// past the matched region of the source string. Quoted operator text
// such as "a && b" is therefore never mutated.
func ReplaceOutsideQuotes(input, from, to string) string {
	if from == "" {
		return input
	}

	var out strings.Builder
	out.Grow(len(input) + 32)
	chars := []rune(input)
	fromChars := []rune(from)
	length := len(chars)
	flen := len(fromChars)
	var inSingleQuote, inDoubleQuote bool

	i := 0
	for i < length {
		c := chars[i]

		if c == '\'' && !inDoubleQuote {
			inSingleQuote = !inSingleQuote
			out.WriteRune(c)
			i++
			continue
		}
		if c == '"' && !inSingleQuote {
			inDoubleQuote = !inDoubleQuote
			out.WriteRune(c)
			i++
			continue
		}

		if !inSingleQuote && !inDoubleQuote && i+flen <= length && runesEqual(chars[i:i+flen], fromChars) {
			out.WriteString(to)
			i += flen
			continue
		}

		out.WriteRune(c)
		i++
	}

	return out.String()
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
