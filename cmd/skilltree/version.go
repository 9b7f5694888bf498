package main

import (
	"fmt"
	"strings"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of skilltree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skilltree version %s\n", strings.TrimSpace(skilltree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
