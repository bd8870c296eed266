// Command tabwalk renders, pickles and fingerprints nested data from JSON or
// YAML input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tabwalk "github.com/tabwalk/tabwalk"
	"github.com/tabwalk/tabwalk/codec"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "tabwalk",
		Short:         "Render, pickle and fingerprint nested data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(
		newRenderCommand(),
		newPickleCommand(),
		newUnpickleCommand(),
		newKeyCommand(),
	)
	return root
}

// newRenderCommand creates the `tabwalk render` command.
func newRenderCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the compact debug form of a JSON or YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decodeInput(cmd, args, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tabwalk.Stringify(v))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "input format (json|yaml)")
	return cmd
}

// newPickleCommand creates the `tabwalk pickle` command.
func newPickleCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "pickle [file]",
		Short: "Print the round-trip literal form of a JSON or YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decodeInput(cmd, args, format)
			if err != nil {
				return err
			}
			text, err := tabwalk.Pickle(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "input format (json|yaml)")
	return cmd
}

// newUnpickleCommand creates the `tabwalk unpickle` command.
func newUnpickleCommand() *cobra.Command {
	var toJSON bool
	cmd := &cobra.Command{
		Use:   "unpickle [file]",
		Short: "Evaluate pickle text back into data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := tabwalk.Unpickle(string(data))
			if err != nil {
				return err
			}
			if toJSON {
				out, err := codec.ToJSON(v)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tabwalk.Stringify(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&toJSON, "json", false, "re-encode the value as JSON")
	return cmd
}

// newKeyCommand creates the `tabwalk key` command.
func newKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "key [arg...]",
		Short: "Print the deterministic fingerprint of an argument list",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]any, len(args))
			for i, a := range args {
				vals[i] = a
			}
			fmt.Fprintln(cmd.OutOrStdout(), tabwalk.Mnemonic(vals...))
			return nil
		},
	}
}

func decodeInput(cmd *cobra.Command, args []string, format string) (any, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	log.Debug("decoding input", "format", format, "bytes", len(data))
	switch format {
	case "json":
		return codec.FromJSON(data)
	case "yaml", "yml":
		return codec.FromYAML(data)
	}
	return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
