package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedglyph/pkg/seed"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// settingsCommand creates the settings command. Its output is a valid
// settings file for "render --settings".
func (c *CLI) settingsCommand() *cobra.Command {
	var (
		token    string
		settings string
	)

	cmd := &cobra.Command{
		Use:   "settings [sketch]",
		Short: "Print the effective settings of a sketch for a seed token",
		Example: `  seedglyph settings arc --seed 0xA1B2C3D4 > arc.toml
  seedglyph render --settings arc.toml --seed 0xA1B2C3D4`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sketch.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			overrides, err := readSettings(settings)
			if err != nil {
				return err
			}
			kind, err := settingsKind(name, overrides)
			if err != nil {
				return err
			}

			tok, fresh, err := seed.Resolve(token, seed.SystemEntropy{})
			if err != nil {
				return err
			}
			s, err := sketch.DefaultsForToken(kind, tok)
			if err != nil {
				return err
			}
			if len(overrides) > 0 {
				if s, err = sketch.DecodeSettings(overrides, s); err != nil {
					return err
				}
			}
			data, err := sketch.EncodeSettings(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# seed: %s\n", tok)
			_, err = out.Write(data)
			if fresh {
				loggerFromContext(cmd.Context()).Debug("manufactured token", "seed", tok)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&token, "seed", "s", "", "seed token (default: a fresh token)")
	cmd.Flags().StringVar(&settings, "settings", "", "TOML settings file applied over the token's defaults (- for stdin)")
	return cmd
}

// settingsKind picks the sketch: the argument wins, then the document's
// "sketch" key, then the default.
func settingsKind(name string, doc []byte) (sketch.Kind, error) {
	if name != "" {
		return sketch.ParseKind(name)
	}
	if len(doc) > 0 {
		kind, err := sketch.PeekKind(doc)
		if err != nil || kind != "" {
			return kind, err
		}
	}
	return sketch.DefaultKind, nil
}
