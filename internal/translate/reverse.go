package translate

import "strings"

const envPrefix = "$env:"

// ToBash translates a PowerShell command line back into bash syntax.
//
// The reverse direction is deliberately narrower than the forward one:
// $env:NAME references become $NAME, and only the reversible subset of
// the command table plus $LASTEXITCODE and $PID are mapped back.
// Translating a line forward and back is therefore not guaranteed to
// reproduce the input. Both rewrites here are quote-aware; text inside
// quoted spans is left alone.
func ToBash(cmd string) string {
	result := stripEnvPrefix(cmd)
	for _, pair := range reverseReplacements {
		result = ReplaceOutsideQuotes(result, pair[0], pair[1])
	}
	return result
}

// stripEnvPrefix rewrites $env:NAME to $NAME outside single-quoted
// spans (PowerShell expands inside double quotes but not single ones).
// Everything else is copied through rune by rune so multi-byte
// characters survive intact. Variable names are the ASCII alphanumeric
// and underscore run following the prefix.
func stripEnvPrefix(cmd string) string {
	var out strings.Builder
	out.Grow(len(cmd))
	chars := []rune(cmd)
	prefix := []rune(envPrefix)
	length := len(chars)
	plen := len(prefix)
	inSingleQuote := false

	i := 0
	for i < length {
		c := chars[i]

		if c == '\'' {
			inSingleQuote = !inSingleQuote
			out.WriteRune(c)
			i++
			continue
		}

		if !inSingleQuote && i+plen <= length && runesEqual(chars[i:i+plen], prefix) {
			out.WriteRune('$')
			i += plen
			for i < length && isASCIIWordChar(chars[i]) {
				out.WriteRune(chars[i])
				i++
			}
			continue
		}

		out.WriteRune(c)
		i++
	}

	return out.String()
}

func isASCIIWordChar(c rune) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
