package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ideamans/svgkit/pkg/factory"
)

var (
	renderClass string
	renderAttrs []string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Render a single icon to stdout",
	Long: `Resolve an icon by name across the configured sets and print its
rendered markup.

The --class flag appends to the computed default classes; an explicit
class passed via --attr class=... replaces them instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderClass, "class", "", "Additional CSS class")
	renderCmd.Flags().StringArrayVar(&renderAttrs, "attr", nil, "Extra attribute as key=value (repeatable)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := factory.Build(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer f.Close()

	attrs, err := parseAttrs(renderAttrs)
	if err != nil {
		return err
	}

	icon, err := f.Svg(cmd.Context(), args[0], renderClass, attrs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), icon.Render())
	return nil
}

// parseAttrs converts repeated key=value flags into an attribute map
func parseAttrs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid attribute %q (expected key=value)", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}
