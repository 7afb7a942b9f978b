package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// sketchesCommand creates the sketches command.
func (c *CLI) sketchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sketches",
		Short: "List the available sketches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sketchTable(sketch.Registry()))
			return nil
		},
	}
}

// sketchTable renders the registry as a table; the default sketch is
// highlighted.
func sketchTable(infos []sketch.Info) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{string(info.Kind), info.Name, info.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Sketch", "Name", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row < len(infos) && infos[row].Kind == sketch.DefaultKind && col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			if col == 2 {
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle
		})
	return t.String()
}
