package cmd

import (
	"fmt"
	"io"
	"os"

	"debt-payoff/config"
	"debt-payoff/repository"
	"debt-payoff/service"

	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "debt-payoff",
	Short:         "Debt payoff calculator",
	Long:          "Plan debt payoff: target-date schedules, fixed-payment horizons and snowball/avalanche ordering.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultPath(), "Config file (YAML)")
}

// app bundles what every command needs: the engine and the loaded Debt List.
type app struct {
	cfg    config.Config
	engine *service.PayoffEngine
	debts  *service.DebtService
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// openApp loads config, opens the configured store and reloads the Debt List.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	cache, closer, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	debts := service.NewDebtService(repository.NewDebtRepository(cache))
	if err := debts.Load(); err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	return &app{
		cfg:    cfg,
		engine: service.NewPayoffEngine(cfg.Engine.MaxPayoffMonths),
		debts:  debts,
		closer: closer,
	}, nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func openStore(cfg config.StoreConfig) (repository.CacheRepository, io.Closer, error) {
	switch cfg.Backend {
	case config.StoreMemory:
		return repository.NewMemoryCache(), nil, nil
	case config.StoreRedis:
		c, err := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	default:
		c, err := repository.OpenSQLiteCache(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	}
}
