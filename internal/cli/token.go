package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedglyph/pkg/seed"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// inspectDraws is how many leading draws "token inspect" shows.
const inspectDraws = 4

// tokenCommand creates the token command.
func (c *CLI) tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manufacture or inspect seed tokens",
	}
	cmd.AddCommand(c.tokenNewCommand())
	cmd.AddCommand(c.tokenInspectCommand())
	return cmd
}

func (c *CLI) tokenNewCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print fresh seed tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			src := seed.SystemEntropy{}
			for i := 0; i < count; i++ {
				tok, err := seed.NewToken(src)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of tokens")
	return cmd
}

func (c *CLI) tokenInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <token>",
		Short: "Show the generator state and default settings a token selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := seed.ParseToken(args[0])
			if err != nil {
				return err
			}
			state, err := seed.DeriveState(tok)
			if err != nil {
				return err
			}
			r := seed.New(state)
			draws := make([]string, inspectDraws)
			for i := range draws {
				draws[i] = fmt.Sprintf("%.6f", r.Float64())
			}

			fmt.Println(StyleTitle.Render(tok.String()))
			printKeyValue("state", fmt.Sprintf("%08x %08x %08x %08x", state.A, state.B, state.C, state.D))
			printKeyValue("draws", fmt.Sprint(draws))

			for _, info := range sketch.Registry() {
				s, err := sketch.DefaultsForToken(info.Kind, tok)
				if err != nil {
					return err
				}
				printKeyValue(string(info.Kind), summarizeSettings(s))
			}
			return nil
		},
	}
}

// summarizeSettings renders the headline parameters of s on one line.
func summarizeSettings(s sketch.Settings) string {
	switch {
	case s.Firework != nil:
		f := s.Firework
		return fmt.Sprintf("%d rays × %d elements, size %.0f ×%.2f, %.0f%% blanks, rotated %.1f°",
			f.Rays, f.Elements, f.BaseFontSize, f.FontSizeScale, f.BlanksPercent, f.Rotation)
	case s.Arc != nil:
		a := s.Arc
		return fmt.Sprintf("%s, %d arcs from r=%.0f step %.0f, size %.0f, span %.0f° from %.1f°, width %.0f",
			a.Pattern, a.Arcs, a.Radius, a.RadiusSpacing, a.FontSize, a.ArcSpan, a.StartAngle, a.FontVariation)
	case s.TextPath != nil:
		p := s.TextPath
		return fmt.Sprintf("%s path, size %.0f, width %.0f", p.PathStyle, p.FontSize, p.FontWidth)
	}
	return ""
}
