package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/shellbridge/internal/domain"
)

const (
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiReset  = "\x1b[0m"
)

// RenderResponse writes the translated command line to out and any
// diagnostics to errOut, so piping stdout into another shell keeps
// working even when warnings are present.
func RenderResponse(out, errOut io.Writer, resp domain.TranslateResponse) {
	fmt.Fprintln(out, resp.Output)

	if len(resp.UnsetVariables) > 0 {
		fmt.Fprintf(errOut, "%swarning:%s referenced but unset: %s\n",
			color(ansiYellow), color(ansiReset), strings.Join(resp.UnsetVariables, ", "))
	}

	if result := resp.ExecutionResult; result != nil {
		if result.Stdout != "" {
			fmt.Fprint(errOut, result.Stdout)
		}
		if result.Stderr != "" {
			fmt.Fprint(errOut, result.Stderr)
		}
		if !result.Ran {
			fmt.Fprintf(errOut, "%serror:%s command exited with code %d\n",
				color(ansiRed), color(ansiReset), result.ExitCode)
		}
	}
}

// color returns the ANSI sequence when stderr is a terminal and an
// empty string otherwise.
func color(seq string) string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return seq
	}
	return ""
}
