package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datum-labs/eppmap"
	"github.com/datum-labs/eppmap/defreg"
	"github.com/datum-labs/eppmap/frame"
	"github.com/datum-labs/eppmap/registry"
	"github.com/datum-labs/eppmap/whowas"
)

func cmdNew() *cobra.Command {
	var trid string
	cmd := &cobra.Command{
		Use:   "new <kind>",
		Short: "Build an EPP command frame",
	}
	cmd.PersistentFlags().StringVar(&trid, "cltrid", "", "client transaction id (default: generated UUID)")
	cmd.AddCommand(
		newRegistryInfo(&trid),
		newRegistryCheck(&trid),
		newDefRegInfo(&trid),
		newDefRegCheck(&trid),
		newWhoWasInfo(&trid),
	)
	return cmd
}

// emit writes obj wrapped in a command frame.
func emit(cmd *cobra.Command, trid string, obj eppmap.Command) error {
	c, _, err := newCodec(cmd)
	if err != nil {
		return err
	}
	data, err := c.EncodeCommand(&frame.Command{ClientTRID: trid, Object: obj})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func newRegistryInfo(trid *string) *cobra.Command {
	var name string
	var all bool
	cmd := &cobra.Command{
		Use:   "registry-info (--name ZONE | --all)",
		Short: "Zone policy info for one zone or the zone list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obj := registry.NewInfoCmd(name)
			if all {
				obj = registry.NewInfoAllCmd()
			}
			return emit(cmd, *trid, obj)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "zone name")
	cmd.Flags().BoolVar(&all, "all", false, "list all zones")
	cmd.MarkFlagsMutuallyExclusive("name", "all")
	cmd.MarkFlagsOneRequired("name", "all")
	return cmd
}

func newRegistryCheck(trid *string) *cobra.Command {
	return &cobra.Command{
		Use:   "registry-check ZONE...",
		Short: "Check zone name availability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, *trid, registry.NewCheckCmd(args...))
		},
	}
}

func newDefRegInfo(trid *string) *cobra.Command {
	var roid, pw string
	cmd := &cobra.Command{
		Use:   "defreg-info --roid ROID",
		Short: "Defensive registration info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obj := defreg.NewInfoCmd(roid)
			if pw != "" {
				obj.AuthInfo = &defreg.AuthInfo{Password: pw}
			}
			return emit(cmd, *trid, obj)
		},
	}
	cmd.Flags().StringVar(&roid, "roid", "", "registration roid")
	cmd.Flags().StringVar(&pw, "pw", "", "authorization password")
	_ = cmd.MarkFlagRequired("roid")
	return cmd
}

func newDefRegCheck(trid *string) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "defreg-check NAME...",
		Short: "Check defensive registration availability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj := defreg.NewCheckCmd(args...)
			for i := range obj.Names {
				obj.Names[i].Level = level
			}
			return emit(cmd, *trid, obj)
		},
	}
	cmd.Flags().StringVar(&level, "level", defreg.LevelStandard, "name level: premium or standard")
	return cmd
}

func newWhoWasInfo(trid *string) *cobra.Command {
	var name, roid string
	cmd := &cobra.Command{
		Use:   "whowas-info (--name DOMAIN | --roid ROID)",
		Short: "Domain history by name or roid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(cmd, *trid, &whowas.InfoCmd{Type: whowas.TypeDomain, Name: name, Roid: roid})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "domain name")
	cmd.Flags().StringVar(&roid, "roid", "", "domain roid")
	cmd.MarkFlagsMutuallyExclusive("name", "roid")
	cmd.MarkFlagsOneRequired("name", "roid")
	return cmd
}
