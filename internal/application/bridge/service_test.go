package bridge

import (
	"context"
	"testing"

	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/pkg/logger"
)

func newService(sig domain.Signals, cfg domain.Config) (*Service, *stubExecutor, *memoryHistory) {
	executor := &stubExecutor{result: domain.ExecutionResult{Ran: true, ExitCode: 0}}
	history := &memoryHistory{}
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		Executor:       executor,
		History:        history,
		Logger:         logger.NewStd(false),
		Signals:        &sig,
		LookupEnv:      func(string) (string, bool) { return "", false },
	}
	return svc, executor, history
}

func defaultConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultDirection: "auto"},
		History:     domain.HistorySettings{Enabled: true},
		Execution:   domain.ExecutionSettings{TimeoutSeconds: 5},
	}
}

func TestRunTranslatesForWindowsHost(t *testing.T) {
	svc, _, history := newService(domain.Signals{PSModulePath: `C:\Modules`}, defaultConfig())

	resp, err := svc.Run(domain.TranslateRequest{
		Context: context.Background(),
		Command: "echo $HOME",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Direction != domain.DirectionToPowerShell {
		t.Fatalf("direction = %s, want to-powershell", resp.Direction)
	}
	if resp.Output != "Write-Output $env:HOME" {
		t.Fatalf("output = %q", resp.Output)
	}
	if len(history.records) != 1 {
		t.Fatalf("expected one history record, got %d", len(history.records))
	}
	if history.records[0].ID == "" {
		t.Fatal("history record has no id")
	}
}

func TestRunTranslatesForPosixHost(t *testing.T) {
	svc, _, _ := newService(domain.Signals{Shell: "/bin/zsh"}, defaultConfig())

	resp, err := svc.Run(domain.TranslateRequest{
		Context: context.Background(),
		Command: "Write-Output $env:HOME",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Direction != domain.DirectionToBash {
		t.Fatalf("direction = %s, want to-bash", resp.Direction)
	}
	if resp.Output != "echo $HOME" {
		t.Fatalf("output = %q", resp.Output)
	}
}

func TestRunHonorsExplicitDirection(t *testing.T) {
	svc, _, _ := newService(domain.Signals{Shell: "/bin/bash"}, defaultConfig())

	resp, err := svc.Run(domain.TranslateRequest{
		Context:   context.Background(),
		Command:   "echo hi",
		Direction: domain.DirectionToPowerShell,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Output != "Write-Output hi" {
		t.Fatalf("output = %q", resp.Output)
	}
}

func TestRunReportsUnsetVariables(t *testing.T) {
	svc, _, _ := newService(domain.Signals{PSModulePath: "x"}, defaultConfig())
	svc.LookupEnv = func(name string) (string, bool) {
		return "", name == "HOME"
	}

	resp, err := svc.Run(domain.TranslateRequest{
		Context: context.Background(),
		Command: "cp $HOME $BACKUP_DIR $BACKUP_DIR",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(resp.UnsetVariables) != 1 || resp.UnsetVariables[0] != "BACKUP_DIR" {
		t.Fatalf("unset variables = %v, want [BACKUP_DIR]", resp.UnsetVariables)
	}
}

func TestRunReportsVariablesFromBashSideOnReverse(t *testing.T) {
	svc, _, _ := newService(domain.Signals{Shell: "/bin/zsh"}, defaultConfig())

	resp, err := svc.Run(domain.TranslateRequest{
		Context: context.Background(),
		Command: "Write-Output $env:HOME",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Direction != domain.DirectionToBash {
		t.Fatalf("direction = %s, want to-bash", resp.Direction)
	}
	// References come from the translated bash text, never from the
	// PowerShell input, where $env:HOME would misread as "env".
	if len(resp.VariableRefs) != 1 || resp.VariableRefs[0] != "HOME" {
		t.Fatalf("variable refs = %v, want [HOME]", resp.VariableRefs)
	}
	if len(resp.UnsetVariables) != 1 || resp.UnsetVariables[0] != "HOME" {
		t.Fatalf("unset variables = %v, want [HOME]", resp.UnsetVariables)
	}
}

func TestRunExecutesWhenRequested(t *testing.T) {
	svc, executor, history := newService(domain.Signals{Shell: "/bin/bash"}, defaultConfig())

	resp, err := svc.Run(domain.TranslateRequest{
		Context: context.Background(),
		Command: "Write-Output hi",
		Execute: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !executor.called {
		t.Fatal("executor was not called")
	}
	if executor.command != "echo hi" {
		t.Fatalf("executor ran %q, want the translated command", executor.command)
	}
	if resp.ExecutionResult == nil || !resp.ExecutionResult.Ran {
		t.Fatalf("expected execution result, got %+v", resp.ExecutionResult)
	}
	if len(history.records) != 1 || !history.records[0].Executed {
		t.Fatalf("expected executed history record, got %+v", history.records)
	}
}

func TestRunSkipsHistoryWhenDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.History.Enabled = false
	svc, _, history := newService(domain.Signals{Shell: "/bin/bash"}, cfg)

	if _, err := svc.Run(domain.TranslateRequest{Context: context.Background(), Command: "pwd"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(history.records) != 0 {
		t.Fatalf("expected no history records, got %d", len(history.records))
	}
}

func TestRunSkipsHistoryOnRequest(t *testing.T) {
	svc, _, history := newService(domain.Signals{Shell: "/bin/bash"}, defaultConfig())

	if _, err := svc.Run(domain.TranslateRequest{Context: context.Background(), Command: "pwd", NoHistory: true}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(history.records) != 0 {
		t.Fatalf("expected no history records, got %d", len(history.records))
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubExecutor struct {
	result  domain.ExecutionResult
	err     error
	called  bool
	command string
}

func (s *stubExecutor) Execute(_ context.Context, command string, _ domain.ShellIdentity) (domain.ExecutionResult, error) {
	s.called = true
	s.command = command
	return s.result, s.err
}

type memoryHistory struct {
	records []domain.TranslationRecord
}

func (m *memoryHistory) Save(record domain.TranslationRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memoryHistory) Records(limit int, search string) ([]domain.TranslationRecord, error) {
	return m.records, nil
}

func (m *memoryHistory) Clear() error {
	m.records = nil
	return nil
}

func (m *memoryHistory) Path() string { return "memory" }
