// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const appName = "go-task-sync"

var _ Client = (*App)(nil)

type App struct {
	root  *cobra.Command
	flags *config.StructuredConfig

	// copyResult mirrors the --copy flag.
	copyResult bool
	clipboard  func(string) error

	newSyncClient SyncClientFactory
	buildInfo     models.AppBuildInfo

	responses *store.ResponseStore
	services  *service.Services
	logger    *logger.Logger
}

// NewApp builds the command tree. Nothing is configured or synced until a
// command that needs data runs.
func NewApp(buildInfo models.AppBuildInfo, newSyncClient SyncClientFactory) *App {
	a := &App{
		clipboard:     clipboard.WriteAll,
		newSyncClient: newSyncClient,
		buildInfo:     buildInfo,
		logger:        logger.Nop(),
	}
	a.root = a.rootCmd()

	return a
}

// Run executes the process command line. Interrupts cancel the running sync.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Execute(ctx, os.Args[1:])
}

// Execute runs the command described by args. A failed command prints a
// readable message to stderr and returns the underlying error.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	err := a.root.ExecuteContext(ctx)
	if err != nil {
		errOut := a.root.ErrOrStderr()
		fmt.Fprintln(errOut, newStyles(errOut).alert.Render("error:"), userMessage(err))
		a.logger.Debug().Err(err).Strs("args", args).Msg("command failed")
	}

	return err
}

// setup loads the configuration and wires the sync stack. It runs at most
// once per App.
func (a *App) setup() error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return err
	}

	a.logger = logger.NewClientLogger(appName, cfg.Log.Level, cfg.Log.File)

	syncClient, err := a.newSyncClient(cfg.Todoist, a.logger)
	if err != nil {
		return fmt.Errorf("create sync client: %w", err)
	}

	a.responses = store.NewResponseStore(syncClient, a.logger)
	a.services = service.NewServices(a.responses, a.logger)

	return nil
}

// sync wires the stack if needed and performs a full sync. The logger,
// tagged with the command name, travels with the context.
func (a *App) sync(cmd *cobra.Command) (service.TaskService, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}

	ctx := a.logger.Field("command", cmd.Name()).WithContext(cmd.Context())

	tasks := a.services.TaskService
	if err := tasks.Sync(ctx); err != nil {
		return nil, err
	}

	return tasks, nil
}
