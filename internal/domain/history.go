package domain

import "time"

// TranslationRecord captures one translation and, when the command was
// run, its execution outcome.
type TranslationRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Direction  string    `json:"direction"`
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	Shell      string    `json:"shell"`
	Executed   bool      `json:"executed"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
}
