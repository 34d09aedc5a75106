// Package app assembles the dependency graph.
package app

import (
	"context"

	"github.com/doeshing/shellbridge/internal/application/bridge"
	"github.com/doeshing/shellbridge/internal/infrastructure/config"
	"github.com/doeshing/shellbridge/internal/infrastructure/executor"
	"github.com/doeshing/shellbridge/internal/infrastructure/history"
	"github.com/doeshing/shellbridge/internal/pkg/logger"
	"github.com/doeshing/shellbridge/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	BridgeService  *bridge.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	HistoryStore   ports.HistoryRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	var historyStore ports.HistoryRepository
	switch cfg.History.Backend {
	case "file":
		historyStore = history.NewFileStore()
	default:
		historyStore = history.NewSQLiteStore()
	}

	svc := &bridge.Service{
		ConfigProvider: cfgLoader,
		Executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
		History:        historyStore,
		Logger:         log,
	}

	return &Container{
		BridgeService:  svc,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		HistoryStore:   historyStore,
		Logger:         log,
	}, nil
}
