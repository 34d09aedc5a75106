package translate

import "strings"

// ToPowerShell translates a single bash command line into its
// PowerShell equivalent.
//
// Three independent passes run in a fixed order. First the leading
// command name is mapped through the command table; a path prefix such
// as /usr/bin/ is stripped for the lookup and only the first occurrence
// of the original token is replaced. Second, control operators are
// rewritten outside quoted spans; operators spelled identically in both
// dialects are skipped. Last, every dollar-sign construct is classified
// and converted. Later passes never re-interpret text inserted by
// earlier ones: qualified $env: references and PowerShell automatic
// variables pass through the dollar-sign scanner unchanged.
func ToPowerShell(cmd string) string {
	result := cmd

	tokens := Tokenize(result)
	if len(tokens) > 0 {
		first := tokens[0]
		name := first
		if idx := strings.LastIndex(first, "/"); idx >= 0 {
			name = first[idx+1:]
		}
		if mapped, ok := forwardCommands[name]; ok {
			result = strings.Replace(result, first, mapped, 1)
		}
	}

	for _, op := range operatorMappings {
		if op.bash == op.powerShell {
			continue
		}
		result = ReplaceOutsideQuotes(result, op.bash, op.powerShell)
	}

	return convertDollarSigns(result)
}
