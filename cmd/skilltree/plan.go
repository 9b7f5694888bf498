package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/cli"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [script]",
	Short: "Replay a script of planner commands and print the build",
	Long: `Reads shell commands (one per line, '#' starts a comment) from a file or stdin,
applies them to a fresh build and prints the result.
The first unknown command or skill aborts with its line number.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		name, _ := cmd.Flags().GetString("name")

		var script io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			script = f
		}

		return cli.RunPlan(cli.RunOptions{
			Config: cfg,
			Name:   name,
			Debug:  debug,
			Format: format,
		}, script, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: markdown, json or yaml")
	planCmd.Flags().String("name", "", "Build name shown in reports")
}
