package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remixstudio/algo-fx/dsp/core"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.wav> ...",
		Short: "Print format and levels of WAV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			for _, path := range args {
				buf, info, err := readWAV(path)
				if err != nil {
					return err
				}

				bold.Fprintln(w, path)
				fmt.Fprintf(w, "  format:   %d ch, %d-bit, %d Hz\n", info.Channels, info.BitDepth, info.SampleRate)
				fmt.Fprintf(w, "  length:   %d frames (%s)\n", info.Frames, buf.Duration())

				peak := buf.Peak()
				line := fmt.Sprintf("  peak:     %.2f dBFS\n", core.LinearToDB(peak))
				if peak >= 1 {
					yellow.Fprint(w, line)
				} else {
					fmt.Fprint(w, line)
				}

				fmt.Fprintf(w, "  rms:      %.2f dBFS\n", core.LinearToDB(buf.RMS()))
			}

			return nil
		},
	}
}
