package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/clients/sheetsclient"
	"github.com/shavzak/scheduler/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string

	sheetsClient *sheetsclient.Client
}

// SheetsClient returns the Google Sheets client. The OAuth client config is only
// loaded, and the OAuth flow only run, the first time a command needs Sheets.
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	app.Logger.Debug("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Debug("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}
