// Package translate converts single command lines between POSIX shell
// ("bash-style") syntax and PowerShell syntax.
//
// The conversion is purely syntactic: command names, control operators
// and variable references are rewritten while quoted string literals
// are preserved untouched. Nothing is ever evaluated or executed. Every
// function in this package is total over UTF-8 input and safe for
// concurrent use; the lookup tables are built once and never mutated.
package translate

import (
	"strings"
	"unicode"
)

// Tokenize splits a command line into whitespace-delimited tokens while
// respecting single quotes, double quotes and backslash escapes. Quote
// characters are retained in the tokens so callers can tell that a
// token was quoted. Unbalanced quotes are not an error: the scan simply
// ends inside the open quote and the partial token collected so far is
// emitted as-is.
func Tokenize(cmd string) []string {
	var tokens []string
	var current []rune
	var inSingleQuote, inDoubleQuote, escapeNext bool

	for _, c := range cmd {
		if escapeNext {
			current = append(current, c)
			escapeNext = false
			continue
		}

		if c == '\\' && !inSingleQuote {
			escapeNext = true
			current = append(current, c)
			continue
		}

		if c == '\'' && !inDoubleQuote {
			inSingleQuote = !inSingleQuote
			current = append(current, c)
			continue
		}

		if c == '"' && !inSingleQuote {
			inDoubleQuote = !inDoubleQuote
			current = append(current, c)
			continue
		}

		if unicode.IsSpace(c) && !inSingleQuote && !inDoubleQuote {
			if len(current) > 0 {
				tokens = append(tokens, string(current))
				current = current[:0]
			}
			continue
		}

		current = append(current, c)
	}

	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}

	return tokens
}

// EscapeSingleQuoted wraps s in single quotes for safe use on a POSIX
// command line. Embedded single quotes are escaped by closing the
// string, emitting a backslashed quote, and reopening it.
func EscapeSingleQuoted(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 10)
	b.WriteByte('\'')
	for _, c := range s {
		if c == '\'' {
			b.WriteString(`'\''`)
		} else {
			b.WriteRune(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
