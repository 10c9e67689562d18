package cmd

import (
	"errors"
	"fmt"

	"github.com/picatz/b64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode Base64 from FILE, or standard input",
		Long: `Decode Base64 from FILE, or standard input.

Both the standard and the URL safe alphabet are accepted. A single trailing
newline is ignored; any other whitespace is an error. On malformed input,
the bytes decoded before the failing chunk are still written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			input = trimNewline(input)

			n, err := transcode(cmd, opts, base64.NewDecoder(input), nil)
			if err != nil {
				var chunkErr *base64.ErrCorruptChunk
				if errors.As(err, &chunkErr) {
					Logger().Warn("decode failed",
						zap.Int("offset", chunkErr.Offset),
						zap.Int64("written_bytes", n),
						zap.Error(chunkErr.Inner),
					)
				}
				return fmt.Errorf("failed to decode input: %w", err)
			}

			Logger().Debug("decoded input",
				zap.Int("input_bytes", len(input)),
				zap.Int64("output_bytes", n),
			)
			return nil
		},
	}
}
