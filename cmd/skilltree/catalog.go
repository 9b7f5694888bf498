package main

import (
	"fmt"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/graph"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/tui"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect skill catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := cfg.LoadCatalog()
		if err != nil {
			return err
		}

		trees := domain.Trees()
		if treeName, _ := cmd.Flags().GetString("tree"); treeName != "" {
			tree, err := domain.ParseTree(treeName)
			if err != nil {
				return err
			}
			trees = []domain.Tree{tree}
		}

		out := cmd.OutOrStdout()
		styler := tui.NewStyler(out)
		for _, tree := range trees {
			fmt.Fprintln(out, styler.Tree(tree, string(tree)))
			for _, s := range cat.InTree(tree) {
				fmt.Fprintf(out, "  %-28s %-22s %-8s max %d", s.ID, s.Name, s.Kind, s.MaxRank)
				if s.TreeRequirement > 0 {
					fmt.Fprintf(out, "  needs %d", s.TreeRequirement)
				}
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file for consistency",
	Long:  `Parses a catalog and reports unknown trees, bad ranks, dangling prerequisites and prerequisite cycles.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var cat *catalog.Catalog
		if len(args) == 1 {
			cat, err = catalog.LoadFile(args[0])
		} else {
			cat, err = cfg.LoadCatalog()
		}
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog is valid: %d skills.\n", cat.Len())
		return nil
	},
}

var catalogGraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the prerequisite graph as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := cfg.LoadCatalog()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(cat, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogValidateCmd, catalogGraphCmd)

	catalogListCmd.Flags().String("tree", "", "Only list one tree")
}
