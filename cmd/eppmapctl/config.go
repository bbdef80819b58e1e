package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// settings is the resolved configuration of one invocation.
type settings struct {
	Format   string `yaml:"format"`
	Strict   bool   `yaml:"strict"`
	Indent   int    `yaml:"indent"`
	LogJSON  bool   `yaml:"logJSON"`
	LogDebug bool   `yaml:"logDebug"`
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	s := &settings{Format: "json", Indent: 2}

	path := flagConfig
	if path == "" {
		path = os.Getenv("EPPMAPCTL_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if v := os.Getenv("EPPMAPCTL_FORMAT"); v != "" {
		s.Format = v
	}
	if v := os.Getenv("EPPMAPCTL_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("EPPMAPCTL_STRICT: %w", err)
		}
		s.Strict = b
	}
	if v := os.Getenv("EPPMAPCTL_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("EPPMAPCTL_INDENT: %w", err)
		}
		s.Indent = n
	}

	f := cmd.Flags()
	if f.Changed("format") {
		s.Format = flagFormat
	}
	if f.Changed("strict") {
		s.Strict = flagStrict
	}
	if f.Changed("indent") {
		s.Indent = flagIndent
	}
	if f.Changed("log-json") {
		s.LogJSON = flagLogJSON
	}
	if f.Changed("log-debug") {
		s.LogDebug = flagLogDebug
	}

	switch s.Format {
	case formatJSON, formatYAML, formatXML:
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or xml)", s.Format)
	}
	return s, nil
}
