package domain

import "context"

// Direction selects which way a command line is translated.
type Direction string

const (
	DirectionAuto         Direction = "auto"
	DirectionToPowerShell Direction = "to-powershell"
	DirectionToBash       Direction = "to-bash"
)

// TranslateRequest captures user intent originating from the CLI.
type TranslateRequest struct {
	Context   context.Context
	Command   string
	Direction Direction
	Execute   bool
	NoHistory bool
}

// TranslateResponse is the canonical result propagated back to the CLI.
type TranslateResponse struct {
	Input           string
	Output          string
	Direction       Direction
	Shell           ShellIdentity
	VariableRefs    []string
	UnsetVariables  []string
	ExecutionResult *ExecutionResult
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}
