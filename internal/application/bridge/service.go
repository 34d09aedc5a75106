// Package bridge implements the translate use case: resolve a
// direction, run the syntax translator, surface referenced environment
// variables, and optionally execute and record the result.
package bridge

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/pkg/logger"
	"github.com/doeshing/shellbridge/internal/ports"
	"github.com/doeshing/shellbridge/internal/translate"
)

// Service wires the translator core with the host-process adapters.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Executor       ports.CommandExecutor
	History        ports.HistoryRepository
	Logger         ports.Logger

	// Signals overrides environment sniffing; used by tests.
	Signals *domain.Signals
	// LookupEnv overrides os.LookupEnv; used by tests.
	LookupEnv func(string) (string, bool)
}

// Run translates req.Command and, when requested, executes the result
// in the host shell.
func (s *Service) Run(req domain.TranslateRequest) (domain.TranslateResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.TranslateResponse{}, fmt.Errorf("load config: %w", err)
	}

	shell := s.classify()
	direction := resolveDirection(req.Direction, cfg, shell)

	resp := domain.TranslateResponse{
		Input:     req.Command,
		Direction: direction,
		Shell:     shell,
	}

	switch direction {
	case domain.DirectionToBash:
		resp.Output = translate.ToBash(req.Command)
	default:
		resp.Output = translate.ToPowerShell(req.Command)
	}

	// Variable references are a bash-syntax concept, so read them from
	// whichever side of the translation is bash: the input when going
	// to PowerShell, the output when coming back.
	refSource := req.Command
	if direction == domain.DirectionToBash {
		refSource = resp.Output
	}
	resp.VariableRefs = translate.ExtractEnvVars(refSource)
	resp.UnsetVariables = s.unsetVariables(resp.VariableRefs)

	s.log().Debug("translated", map[string]interface{}{
		"direction": direction,
		"shell":     shell.Name,
	})

	record := domain.TranslationRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Direction: string(direction),
		Input:     req.Command,
		Output:    resp.Output,
		Shell:     string(shell.Name),
	}

	if req.Execute && s.Executor != nil {
		execCtx := ctx
		if timeout := time.Duration(cfg.Execution.TimeoutSeconds) * time.Second; timeout > 0 {
			var cancel context.CancelFunc
			execCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		result, execErr := s.Executor.Execute(execCtx, resp.Output, shell)
		resp.ExecutionResult = &result
		record.Executed = true
		record.ExitCode = result.ExitCode
		record.DurationMS = result.DurationMS
		if execErr != nil {
			s.log().Warn("command failed", map[string]interface{}{
				"exit_code": result.ExitCode,
			})
		}
	}

	if cfg.History.Enabled && !req.NoHistory && s.History != nil {
		if err := s.History.Save(record); err != nil {
			s.log().Error("save history", err, nil)
		}
	}

	return resp, nil
}

// resolveDirection applies the request override, then the configured
// default, then the auto rule: Windows hosts receive POSIX input to
// convert, POSIX hosts receive PowerShell input.
func resolveDirection(requested domain.Direction, cfg domain.Config, shell domain.ShellIdentity) domain.Direction {
	direction := requested
	if direction == "" || direction == domain.DirectionAuto {
		direction = domain.Direction(cfg.Preferences.DefaultDirection)
	}
	switch direction {
	case domain.DirectionToBash, domain.DirectionToPowerShell:
		return direction
	}
	if shell.IsWindows() {
		return domain.DirectionToPowerShell
	}
	return domain.DirectionToBash
}

func (s *Service) classify() domain.ShellIdentity {
	if s.Signals != nil {
		return domain.ClassifyShell(*s.Signals)
	}
	return domain.ClassifyShell(domain.SignalsFromEnv())
}

// unsetVariables reports which referenced variables are missing from
// the environment, deduplicated but in reference order.
func (s *Service) unsetVariables(refs []string) []string {
	lookup := s.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var unset []string
	seen := make(map[string]bool, len(refs))
	for _, name := range refs {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := lookup(name); !ok {
			unset = append(unset, name)
		}
	}
	return unset
}

func (s *Service) log() ports.Logger {
	if s.Logger == nil {
		return logger.NewStd(false)
	}
	return s.Logger
}
