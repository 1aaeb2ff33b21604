package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideamans/svgkit/pkg/factory"
)

var listPaths bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [set]",
	Short: "List the icons of a set, or all registered sets",
	Long: `Without arguments, list every registered icon set. With a set name,
enumerate the set's icon files by logical name, respecting the set's
filter list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPaths, "paths", false, "Also print resolved file paths")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := factory.Build(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer f.Close()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, set := range f.All() {
			fmt.Fprintf(out, "%s\t%s\n", set.Name, set.Path)
		}
		return nil
	}

	files, err := f.GetFiles(args[0])
	if err != nil {
		return err
	}
	for _, file := range files {
		if listPaths {
			fmt.Fprintf(out, "%s\t%s\n", file.Name, file.Path)
		} else {
			fmt.Fprintln(out, file.Name)
		}
	}
	return nil
}
