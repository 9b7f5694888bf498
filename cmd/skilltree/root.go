package main

import (
	"fmt"
	"os"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "skilltree",
	Short: "Skilltree plans point allocations across the Conditioning, Mobility and Survival trees",
	Long: `Skilltree is a build planner for a three-tree skill system.
It enforces prerequisites, tree requirements and the expedition point budget,
keeps an undo/redo history and reports build summaries and radar statistics.

Defaults come from SKILLTREE_* environment variables; flags override them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	addConfigFlags(rootCmd.PersistentFlags())
}

// addConfigFlags declares the flags that override config.Config.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("catalog", "", "YAML skill catalog (default: embedded catalog)")
	fs.Int("tier", 0, "Expedition tier")
	fs.Int("base-points", 75, "Points available at tier 0")
	fs.Int("tier-bonus", 5, "Points added per expedition tier")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.Bool("debug", false, "Log planner events to stderr")
}

// loadConfig reads the environment and applies every flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog, _ = flags.GetString("catalog")
	}
	if flags.Changed("tier") {
		cfg.Tier, _ = flags.GetInt("tier")
	}
	if flags.Changed("base-points") {
		cfg.BasePoints, _ = flags.GetInt("base-points")
	}
	if flags.Changed("tier-bonus") {
		cfg.TierBonus, _ = flags.GetInt("tier-bonus")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
