package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/remixstudio/algo-fx/dsp/effectchain"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List presets or print one as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				cfg, err := effectchain.Preset(args[0])
				if err != nil {
					return err
				}

				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")

				return enc.Encode(cfg)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, p := range effectchain.Presets() {
				fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint(p.Name), p.Description)
			}

			return tw.Flush()
		},
	}
}
