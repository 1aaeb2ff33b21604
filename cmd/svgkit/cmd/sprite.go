package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideamans/svgkit/pkg/factory"
	"github.com/ideamans/svgkit/pkg/sprite"
)

var spriteOutput string

// spriteCmd represents the sprite command
var spriteCmd = &cobra.Command{
	Use:   "sprite <set>",
	Short: "Generate an SVG sprite for a set",
	Long: `Build a sprite document containing a <symbol> element for every icon
file of the given set, respecting the set's filter list. Templates can
then reference icons via <use href="#symbol-id">.`,
	Args: cobra.ExactArgs(1),
	RunE: runSprite,
}

func init() {
	spriteCmd.Flags().StringVarP(&spriteOutput, "output", "o", "", "Write the sprite to a file instead of stdout")
	rootCmd.AddCommand(spriteCmd)
}

func runSprite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := factory.Build(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := sprite.NewBuilder(f).Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if spriteOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}
	if err := os.WriteFile(spriteOutput, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write sprite: %w", err)
	}
	return nil
}
