package cmd

import (
	"github.com/picatz/b64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCommand(opts *options) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "encode [FILE]",
		Short: "Encode FILE, or standard input, to Base64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var trailer []byte
			if !noNewline {
				trailer = []byte("\n")
			}

			n, err := transcode(cmd, opts, base64.NewEncoder(input), trailer)
			if err != nil {
				return err
			}

			Logger().Debug("encoded input",
				zap.Int("input_bytes", len(input)),
				zap.Int64("output_bytes", n),
			)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not append a trailing newline")

	return cmd
}
