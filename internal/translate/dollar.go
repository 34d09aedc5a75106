package translate

import (
	"strconv"
	"strings"
	"unicode"
)

// convertDollarSigns rewrites every bash dollar-sign construct in input
// to its PowerShell equivalent in a single left-to-right pass over the
// string's runes.
//
// Each $ is classified by what follows it: $( passes through unchanged
// (PowerShell shares the subexpression syntax), ${NAME} and $NAME
// become $env:NAME, $? becomes $LASTEXITCODE, $$ becomes $PID, $! has
// no PowerShell counterpart and is replaced with an inert comment, $#
// becomes $args.Count, $@ and $* become $args, and $0-$9 map to the
// invocation name and zero-indexed $args accessors. A $ inside a
// single-quoted span is literal in bash and is copied through, as is
// any $ followed by something that cannot start an expansion.
func convertDollarSigns(input string) string {
	var out strings.Builder
	out.Grow(len(input) + 32)
	chars := []rune(input)
	length := len(chars)
	inSingleQuote := false

	i := 0
	for i < length {
		c := chars[i]

		// Single quotes suppress all expansion in bash.
		if c == '\'' {
			inSingleQuote = !inSingleQuote
			out.WriteRune(c)
			i++
			continue
		}
		if inSingleQuote {
			out.WriteRune(c)
			i++
			continue
		}

		if c != '$' || i+1 >= length {
			out.WriteRune(c)
			i++
			continue
		}

		next := chars[i+1]
		switch {
		case next == '(':
			// Subshell: $( is valid PowerShell too, let it flow through.
			out.WriteRune('$')
			i++

		case next == '{':
			closing := indexRune(chars[i+2:], '}')
			if closing < 0 {
				// No closing brace: the dollar is literal.
				out.WriteRune('$')
				i++
				continue
			}
			name := string(chars[i+2 : i+2+closing])
			base := name
			if j := strings.IndexFunc(base, isExpansionOp); j >= 0 {
				base = base[:j]
			}
			if IsValidVarName(base) {
				out.WriteString("$env:")
				out.WriteString(base)
			} else {
				out.WriteString("${")
				out.WriteString(name)
				out.WriteRune('}')
			}
			i += 3 + closing

		case next == '?':
			out.WriteString("$LASTEXITCODE")
			i += 2

		case next == '$':
			out.WriteString("$PID")
			i += 2

		case next == '!':
			// Last background job id has no PowerShell counterpart.
			out.WriteString("<# $! not supported #>")
			i += 2

		case next == '#':
			out.WriteString("$args.Count")
			i += 2

		case next == '@' || next == '*':
			out.WriteString("$args")
			i += 2

		case next >= '0' && next <= '9':
			if next == '0' {
				out.WriteString("$MyInvocation.MyCommand.Name")
			} else {
				out.WriteString("$args[")
				out.WriteString(strconv.Itoa(int(next - '1')))
				out.WriteRune(']')
			}
			i += 2

		case next == '_' && (i+2 >= length || !isAlphanumeric(chars[i+2])):
			// Bare $_ is valid in both dialects; only a longer run is a
			// variable reference.
			out.WriteString("$_")
			i += 2

		case unicode.IsLetter(next) || next == '_':
			start := i + 1
			end := start
			for end < length && isVarChar(chars[end]) {
				end++
			}
			name := string(chars[start:end])
			switch {
			case name == "env" && end < length && chars[end] == ':':
				// Already a qualified PowerShell reference, typically
				// inserted by the command table. Keep it intact.
				out.WriteString("$env:")
				end++
			case powerShellAutomatic[name]:
				out.WriteRune('$')
				out.WriteString(name)
			default:
				out.WriteString("$env:")
				out.WriteString(name)
			}
			i = end

		default:
			// Anything else after the dollar: literal.
			out.WriteRune('$')
			i++
		}
	}

	return out.String()
}
