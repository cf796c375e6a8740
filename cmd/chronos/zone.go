package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pachecot/chronos"
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Print the zone interval containing an instant",
	RunE:  runZone,
}

func init() {
	zoneCmd.Flags().String("zone", "", "zone id (default from config, falling back to UTC)")
	zoneCmd.Flags().String("at", "", "RFC3339 instant to look up (default now)")
}

func runZone(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	flags := cmd.Flags()

	zoneID, _ := flags.GetString("zone")
	if zoneID == "" {
		zoneID = cfg.DefaultZone
	}
	atStr, _ := flags.GetString("at")

	fields := logrus.Fields{"zone": zoneID, "at": atStr}
	log.WithFields(fields).Debug("zone: starting")

	zone, err := chronos.NewZoneProvider().GetZone(zoneID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("zone: failed to resolve zone")
		return fmt.Errorf("chronos zone: %w", err)
	}

	var instant chronos.Instant
	if atStr == "" {
		instant = chronos.SystemClock{}.GetCurrentInstant()
	} else {
		instant, err = parseInstant(atStr)
		if err != nil {
			log.WithFields(fields).WithError(err).Error("zone: failed to parse instant")
			return err
		}
	}

	interval := zone.GetZoneInterval(instant)
	savings, err := interval.Savings()
	if err != nil {
		log.WithFields(fields).WithError(err).Error("zone: failed to compute savings")
		return fmt.Errorf("chronos zone: %w", err)
	}
	log.WithFields(fields).WithField("interval", interval.Name).Debug("zone: resolved")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:            %s\n", interval.Name)
	fmt.Fprintf(out, "wall offset:     %s\n", interval.WallOffset)
	fmt.Fprintf(out, "standard offset: %s\n", interval.StandardOffset)
	fmt.Fprintf(out, "savings:         %s\n", savings)
	if interval.HasStart {
		fmt.Fprintf(out, "start:           %s\n", interval.Start)
	} else {
		fmt.Fprintln(out, "start:           (unbounded)")
	}
	if interval.HasEnd {
		fmt.Fprintf(out, "end:             %s\n", interval.End)
	} else {
		fmt.Fprintln(out, "end:             (unbounded)")
	}
	return nil
}
