package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pachecot/chronos"
	"github.com/pachecot/chronos/config"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a local date-time from one zone to another",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("datetime", "", "local date-time in the source zone (YYYY-MM-DDTHH:MM:SS), required")
	convertCmd.Flags().String("from", "", "source zone id (default from config)")
	convertCmd.Flags().String("to", "", "destination zone id, required")
	convertCmd.Flags().String("resolver", "", `how to resolve an ambiguous or skipped local time: "strict" or "lenient" (default from config)`)
	_ = convertCmd.MarkFlagRequired("datetime")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	flags := cmd.Flags()

	dtStr, _ := flags.GetString("datetime")
	fromID, _ := flags.GetString("from")
	toID, _ := flags.GetString("to")
	resolverName, _ := flags.GetString("resolver")

	if fromID == "" {
		fromID = cfg.DefaultZone
	}
	if resolverName == "" {
		resolverName = cfg.DefaultResolver
	}

	fields := logrus.Fields{"datetime": dtStr, "from": fromID, "to": toID, "resolver": resolverName}
	log.WithFields(fields).Debug("convert: starting")

	local, err := parseLocalDateTime(dtStr)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("convert: failed to parse datetime")
		return err
	}

	resolver, err := config.ResolverByName(resolverName)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("convert: unknown resolver")
		return err
	}

	provider := chronos.NewZoneProvider()
	fromZone, err := provider.GetZone(fromID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("convert: failed to resolve source zone")
		return fmt.Errorf("chronos convert: %w", err)
	}
	toZone, err := provider.GetZone(toID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("convert: failed to resolve destination zone")
		return fmt.Errorf("chronos convert: %w", err)
	}

	zdt, err := chronos.NewZonedDateTime(local, fromZone, resolver)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("convert: failed to map local time")
		return fmt.Errorf("chronos convert: %w", err)
	}

	converted := zdt.WithZone(toZone)
	out := formatZonedDateTime(converted, cfg.Layout)
	log.WithFields(fields).WithField("result", out).Debug("convert: resolved")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
