package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/config"
	"github.com/dmitrijs2005/memoryvault/internal/filex"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/repositories/capsules"
	"github.com/dmitrijs2005/memoryvault/internal/services"
	"github.com/dmitrijs2005/memoryvault/internal/storage"
	"github.com/dmitrijs2005/memoryvault/internal/vault"
)

type App struct {
	config          *config.Config
	store           storage.Storage
	capsuleService  services.CapsuleService
	settingsService services.SettingsService
	log             logging.Logger
	reader          *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if !c.Backend.Valid() {
		return nil, fmt.Errorf("%w: unknown backend %q", common.ErrorValidation, c.Backend)
	}

	store, err := openStorage(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.Backend, "error", err)
		return nil, err
	}

	v := vault.New(store, log)
	repo := capsules.NewVaultRepository(v)

	return &App{
		config:          c,
		store:           store,
		capsuleService:  services.NewCapsuleService(repo, c.MediaDir(), log),
		settingsService: services.NewSettingsService(v, log),
		log:             log,
		reader:          bufio.NewReader(os.Stdin),
	}, nil
}

func openStorage(ctx context.Context, c *config.Config) (storage.Storage, error) {
	switch c.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStorage(), nil
	case config.BackendSQLite:
		if _, err := filex.EnsureDir(c.DataDir); err != nil {
			return nil, err
		}
		return storage.InitDatabase(ctx, filepath.Join(c.DataDir, "vault.db"))
	default:
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, err
		}
		return storage.NewFileStorage(dir)
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	initStyles()
	printlnFn("Memory Vault CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error(context.Background(), "error closing storage", "error", err)
	}
}

// getStatus renders the prompt suffix: the per-status capsule counts.
func (a *App) getStatus() string {
	capsules, err := a.capsuleService.List(context.Background())
	if err != nil {
		return ""
	}
	counts := services.StatusCounts(capsules, nowFn())
	return fmt.Sprintf("(%d locked / %d ready / %d unlocked)", counts.Locked, counts.Ready, counts.Unlocked)
}
