package cmd

import (
	"fmt"
	"os"

	"debt-payoff/cli"
	"debt-payoff/config"
	"debt-payoff/service"

	"github.com/spf13/cobra"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagConfigForce, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", flagConfig)
	if _, err := os.Stat(flagConfig); err == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:    %s\n", cfg.Server.Addr)
	fmt.Printf("    Rate limit: %d per %s\n", cfg.Server.RateLimit, cfg.Server.RateWindow)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Backend: %s\n", cfg.Store.Backend)
	switch cfg.Store.Backend {
	case config.StoreSQLite:
		fmt.Printf("    Path:    %s\n", cfg.Store.SQLitePath)
	case config.StoreRedis:
		fmt.Printf("    Address: %s (db %d, prefix %q)\n", cfg.Store.RedisAddr, cfg.Store.RedisDB, cfg.Store.RedisPrefix)
	}
	fmt.Println()

	engine := service.NewPayoffEngine(cfg.Engine.MaxPayoffMonths)
	fmt.Println("  [Engine]")
	fmt.Printf("    Payoff horizon: %d months\n", engine.MaxMonths())
	fmt.Println()

	fmt.Println("  Run `debt-payoff config init` to write a config file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(flagConfig); err == nil && !flagConfigForce {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("%s already exists; use --force to overwrite", flagConfig)))
		return nil
	}

	if err := config.Save(config.DefaultConfig(), flagConfig); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", flagConfig)
	return nil
}
