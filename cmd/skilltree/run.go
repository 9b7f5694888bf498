package main

import (
	"context"
	"os"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Plan a build interactively",
	Long:  `Starts the interactive planner shell. Type 'help' inside the shell for the command list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		name, _ := cmd.Flags().GetString("name")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunSession(ctx, cli.RunOptions{
			Config: cfg,
			Name:   name,
			Debug:  debug,
			Quiet:  quiet,
		}, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("quiet", "q", false, "Hide the banner and prompt")
	runCmd.Flags().String("name", "", "Build name shown in reports")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
