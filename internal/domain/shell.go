// Package domain defines the core entities and value objects of
// shellbridge: shell identity, translation requests and results, and
// the configuration schema. The package is independent of
// infrastructure concerns.
package domain

import (
	"os"
	"strings"
)

// ShellName enumerates recognized shells.
type ShellName string

const (
	ShellUnknown    ShellName = "unknown"
	ShellBash       ShellName = "bash"
	ShellZsh        ShellName = "zsh"
	ShellFish       ShellName = "fish"
	ShellPowerShell ShellName = "powershell"
	ShellCmd        ShellName = "cmd"
)

// Signals carries the environment lookups that shell classification
// runs on. An empty string means the variable was unset.
type Signals struct {
	Shell        string // SHELL
	PSModulePath string // PSModulePath
	ComSpec      string // COMSPEC
}

// SignalsFromEnv snapshots the classification signals from the current
// process environment.
func SignalsFromEnv() Signals {
	return Signals{
		Shell:        os.Getenv("SHELL"),
		PSModulePath: os.Getenv("PSModulePath"),
		ComSpec:      os.Getenv("COMSPEC"),
	}
}

// ShellIdentity is the result of classification. Raw keeps the
// original SHELL value, which matters when Name is ShellUnknown.
type ShellIdentity struct {
	Name ShellName
	Raw  string
}

// ClassifyShell derives the host shell from the given signals. SHELL
// wins when set; otherwise a populated PSModulePath indicates
// PowerShell and COMSPEC a Windows command prompt.
func ClassifyShell(sig Signals) ShellIdentity {
	if sig.Shell != "" {
		switch {
		case strings.Contains(sig.Shell, "bash"):
			return ShellIdentity{Name: ShellBash, Raw: sig.Shell}
		case strings.Contains(sig.Shell, "zsh"):
			return ShellIdentity{Name: ShellZsh, Raw: sig.Shell}
		case strings.Contains(sig.Shell, "fish"):
			return ShellIdentity{Name: ShellFish, Raw: sig.Shell}
		default:
			return ShellIdentity{Name: ShellUnknown, Raw: sig.Shell}
		}
	}
	if sig.PSModulePath != "" {
		return ShellIdentity{Name: ShellPowerShell}
	}
	if sig.ComSpec != "" {
		return ShellIdentity{Name: ShellCmd}
	}
	return ShellIdentity{Name: ShellUnknown, Raw: "unknown"}
}

// IsPosix reports whether the shell natively expands POSIX syntax.
// Fish is deliberately excluded: it is installed on POSIX systems but
// does not implement POSIX expansion rules.
func (s ShellIdentity) IsPosix() bool {
	return s.Name == ShellBash || s.Name == ShellZsh
}

// IsWindows reports whether the shell is a Windows shell.
func (s ShellIdentity) IsWindows() bool {
	return s.Name == ShellPowerShell || s.Name == ShellCmd
}
