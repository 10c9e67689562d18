package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the flags shared by all commands.
type options struct {
	verbose bool
	output  string
}

// Execute runs the b64 command line tool.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand returns the root command with the encode and decode
// subcommands attached.
func NewRootCommand(version, commit string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "b64",
		Short:        "Heapless Base64 encoder and decoder",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = Logger().Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")

	root.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
	)

	return root
}

// readInput returns the contents of the file named by args, or of the
// command's input when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return b, nil
}

// transcode copies everything src produces to the configured output. The
// bytes produced before an error are still written.
func transcode(cmd *cobra.Command, opts *options, src io.Reader, trailer []byte) (int64, error) {
	if opts.output == "" {
		return writeOutput(cmd.OutOrStdout(), src, trailer)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	n, err := writeOutput(f, src, trailer)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		return n, fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return n, err
}

// writeOutput buffers everything src produces into out, followed by
// trailer when src ended cleanly.
func writeOutput(out io.Writer, src io.Reader, trailer []byte) (int64, error) {
	w := bufio.NewWriter(out)

	n, copyErr := io.Copy(w, src)
	if copyErr == nil && len(trailer) > 0 {
		if _, err := w.Write(trailer); err != nil {
			return n, fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("failed to write output: %w", err)
	}
	return n, copyErr
}

// trimNewline strips a single trailing line ending, as left by echo or
// a text editor.
func trimNewline(b []byte) []byte {
	if bytes.HasSuffix(b, []byte("\r\n")) {
		return b[:len(b)-2]
	}
	return bytes.TrimSuffix(b, []byte("\n"))
}
