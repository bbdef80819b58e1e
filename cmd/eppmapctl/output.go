package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datum-labs/eppmap"
	"github.com/datum-labs/eppmap/frame"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatXML  = "xml"
)

func readInput(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(arg)
}

func render(w io.Writer, c *frame.Codec, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatXML:
		out, err := c.Encode(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// violations lists every rule v breaks, one line each.
func violations(v any) []string {
	var err error
	switch m := v.(type) {
	case *frame.Command:
		err = m.Validate()
	case *frame.Response:
		err = m.Validate()
	case eppmap.Element:
		err = m.Validate()
	}
	if err == nil {
		return nil
	}
	var ve *eppmap.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	out := make([]string, len(ve.Violations))
	for i, e := range ve.Violations {
		out[i] = ve.Element + ": " + e.Error()
	}
	return out
}
