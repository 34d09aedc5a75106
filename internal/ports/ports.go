// Package ports defines the interfaces between the application core
// and the infrastructure adapters (config files, history stores, the
// host shell). The application depends only on these abstractions;
// concrete implementations live under internal/infrastructure.
package ports

import (
	"context"

	"github.com/doeshing/shellbridge/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read ~/.shellbridge/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryRepository persists translation records.
type HistoryRepository interface {
	Save(domain.TranslationRecord) error
	Records(limit int, search string) ([]domain.TranslationRecord, error)
	Clear() error
	Path() string
}

// CommandExecutor runs a translated command in a platform-appropriate
// shell derived from the given identity.
type CommandExecutor interface {
	Execute(ctx context.Context, command string, shell domain.ShellIdentity) (domain.ExecutionResult, error)
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
