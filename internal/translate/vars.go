package translate

import (
	"strings"
	"unicode"
)

// IsValidVarName reports whether name is a valid shell variable
// identifier: non-empty, first character a letter or underscore, the
// rest letters, digits or underscores.
func IsValidVarName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		if i == 0 {
			if !unicode.IsLetter(c) && c != '_' {
				return false
			}
			continue
		}
		if !isVarChar(c) {
			return false
		}
	}
	return true
}

// ExtractEnvVars returns the environment variable names referenced in
// cmd via $NAME or ${NAME} (including expansion forms such as
// ${NAME:-default}, whose operator suffix is stripped). Names are
// returned in first-seen order and duplicates are kept. Candidates that
// are not valid identifiers are skipped silently.
func ExtractEnvVars(cmd string) []string {
	var vars []string
	chars := []rune(cmd)
	length := len(chars)

	i := 0
	for i < length {
		if chars[i] == '$' && i+1 < length {
			next := chars[i+1]
			if next == '{' {
				if end := indexRune(chars[i+2:], '}'); end >= 0 {
					name := string(chars[i+2 : i+2+end])
					if j := strings.IndexFunc(name, isExpansionOp); j >= 0 {
						name = name[:j]
					}
					if IsValidVarName(name) {
						vars = append(vars, name)
					}
					i += 3 + end
					continue
				}
			} else if unicode.IsLetter(next) || next == '_' {
				start := i + 1
				end := start
				for end < length && isVarChar(chars[end]) {
					end++
				}
				name := string(chars[start:end])
				if IsValidVarName(name) {
					vars = append(vars, name)
				}
				i = end
				continue
			}
		}
		i++
	}

	return vars
}

// isExpansionOp matches the parameter-expansion operators that may
// follow a variable name inside ${...}.
func isExpansionOp(c rune) bool {
	return c == ':' || c == '-' || c == '+' || c == '='
}

func isVarChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isAlphanumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func indexRune(chars []rune, target rune) int {
	for i, c := range chars {
		if c == target {
			return i
		}
	}
	return -1
}
