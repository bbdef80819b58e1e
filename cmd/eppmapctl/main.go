// main.go
// A small Cobra-based CLI around the eppmap codecs.
//
// Subcommands
//   decode <file|->     – parse an EPP frame or a bare mapping element and print it
//   validate <file|->   – decode, then list every violation (exit status 1 if any)
//   fmt <file|->        – decode and re-encode as indented XML
//   new <kind>          – build a command frame (registry-info, registry-check,
//                         defreg-info, defreg-check, whowas-info)
//
// Flags
//   --format json|yaml|xml (default json)   – output of decode
//   --strict                                – validate while decoding
//   --indent N                              – XML indent, negative for one line
//   --config FILE                           – YAML config file
//   --log-json, --log-debug                 – log format and level (stderr)
//
// Env options (override the config file, overridden by flags):
//   EPPMAPCTL_CONFIG, EPPMAPCTL_FORMAT, EPPMAPCTL_STRICT, EPPMAPCTL_INDENT
//
// Run examples
//   ./eppmapctl new registry-info --all
//   ./eppmapctl new whowas-info --name example.com | ./eppmapctl decode - --format yaml
//   ./eppmapctl validate testdata/defreg-create.xml

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/datum-labs/eppmap/frame"
)

var (
	flagFormat   string
	flagStrict   bool
	flagIndent   int
	flagConfig   string
	flagLogJSON  bool
	flagLogDebug bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eppmapctl",
		Short:         "EPP registry/defReg/whowas mapping tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Global flags
	root.PersistentFlags().StringVar(&flagFormat, "format", "json", "decode output format: json, yaml or xml")
	root.PersistentFlags().BoolVar(&flagStrict, "strict", false, "validate elements while decoding")
	root.PersistentFlags().IntVar(&flagIndent, "indent", 2, "XML indent; negative writes a single line")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "log as JSON")
	root.PersistentFlags().BoolVar(&flagLogDebug, "log-debug", false, "log at debug level")

	root.AddCommand(cmdDecode(), cmdValidate(), cmdFmt(), cmdNew())
	return root
}

// newCodec builds the frame codec from the config file, the environment and
// the flags that were set explicitly, in that order.
func newCodec(cmd *cobra.Command) (*frame.Codec, *settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cmd, s)
	c := frame.New(
		frame.WithLogger(log),
		frame.WithStrictDecode(s.Strict),
		frame.WithIndent(s.Indent),
	)
	log.Debug("codec ready", "format", s.Format, "strict", s.Strict, "indent", s.Indent)
	return c, s, nil
}

func newLogger(cmd *cobra.Command, s *settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if s.LogDebug {
		opts.Level = slog.LevelDebug
	}
	if s.LogJSON {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
}

func cmdDecode() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode an EPP frame or mapping element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := newCodec(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			v, err := c.Decode(data)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c, s.Format, v)
		},
	}
}

func cmdValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Decode and report every violation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newCodec(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			v, err := c.Decode(data)
			if err != nil {
				return err
			}
			vs := violations(v)
			for _, msg := range vs {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			if len(vs) > 0 {
				return fmt.Errorf("%d violation(s)", len(vs))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func cmdFmt() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Re-encode as normalised XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newCodec(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			v, err := c.Decode(data)
			if err != nil {
				return err
			}
			out, err := c.Encode(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
